package model

import (
	"time"
)

// User represents a user document in MongoDB. The document ID is the
// authentication subject identifier, so exactly one document exists per
// identity.
type User struct {
	ID                string              `json:"userId" bson:"_id"`
	ProfilePicture    string              `json:"profilePicture" bson:"profilePicture"`
	JoinedDate        time.Time           `json:"joinedDate" bson:"joinedDate"`
	Achievements      []AchievementRecord `json:"achievements" bson:"achievements"`
	CurrentProjects   []string            `json:"currentProjects" bson:"currentProjects"`
	CompletedProjects []string            `json:"completedProjects" bson:"completedProjects"`
}

// AchievementRecord is one entry in the user's achievement history. Entries
// are appended when an achievement transitions to complete and are never
// removed, so the list reads in chronological order of completion.
type AchievementRecord struct {
	ID   string    `json:"id" bson:"id"`
	Name string    `json:"name" bson:"name"`
	Date time.Time `json:"date" bson:"date"`
}
