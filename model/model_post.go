package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Reply is a threaded response to a post. Profile fields are a snapshot of
// the replying user at reply time and are not re-synced later.
type Reply struct {
	UserID         bson.ObjectID `json:"userId"         bson:"user_id"`
	Text           string        `json:"text"           bson:"text"`
	UserProfilePic string        `json:"userProfilePic" bson:"user_profile_pic"`
	Username       string        `json:"username"       bson:"username"`
}

type Post struct {
	ID        bson.ObjectID   `json:"id"                  bson:"_id,omitempty"`
	PostedBy  bson.ObjectID   `json:"postedBy"            bson:"posted_by"`
	Text      string          `json:"text"                bson:"text"`
	Img       string          `json:"img,omitempty"       bson:"img,omitempty"`
	ImgID     string          `json:"-"                   bson:"img_id,omitempty"`
	Likes     []bson.ObjectID `json:"likes"               bson:"likes"`
	Replies   []Reply         `json:"replies"             bson:"replies"`
	CreatedAt time.Time       `json:"createdAt"           bson:"created_at"`
}
