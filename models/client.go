package models

// Client is a user who books workers and raises work alerts.
type Client struct {
	ID         string     `bson:"id" json:"id"`
	Name       string     `bson:"name" json:"name"`
	Email      string     `bson:"email" json:"email"`
	Phone      string     `bson:"phone" json:"phone"`
	Avatar     string     `bson:"avatar" json:"avatar"`
	FCMToken   string     `bson:"fcmToken" json:"fcmToken"`
	Timestamps Timestamps `bson:"timestamps" json:"timestamps"`
}
