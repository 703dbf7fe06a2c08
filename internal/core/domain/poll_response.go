package domain

import "time"

// PollResponse is one participant's classification of catalog items.
// It references its room by id only; a room's responses are loaded by query.
type PollResponse struct {
	ID          int64      `json:"id"`
	RoomID      int64      `json:"room_id"`
	Liked       []FoodItem `json:"liked"`
	Disliked    []FoodItem `json:"disliked"`
	Neutral     []FoodItem `json:"neutral"`
	SubmittedAt time.Time  `json:"submitted_at"`
}

// Foods returns the items the response placed in the given category.
func (p PollResponse) Foods(c FoodCategory) []FoodItem {
	switch c {
	case CategoryLiked:
		return p.Liked
	case CategoryDisliked:
		return p.Disliked
	case CategoryNeutral:
		return p.Neutral
	}
	return nil
}
