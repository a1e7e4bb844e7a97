package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID         bson.ObjectID   `json:"id"             bson:"_id,omitempty"`
	Name       string          `json:"name"           bson:"name"`
	Username   string          `json:"username"       bson:"username"`
	Email      string          `json:"email"          bson:"email"`
	Password   string          `json:"-"              bson:"password"`
	ProfilePic string          `json:"profilePic"     bson:"profile_pic"`
	Bio        string          `json:"bio,omitempty"  bson:"bio,omitempty"`
	Followers  []bson.ObjectID `json:"followers"      bson:"followers"`
	Following  []bson.ObjectID `json:"following"      bson:"following"`
	CreatedAt  time.Time       `json:"createdAt"      bson:"created_at"`
}
