package model

// Project represents a project document in MongoDB. Projects follow the
// schema.org HowTo shape: ordered steps containing ordered directions, plus a
// flat list of achievements. The document ID is the caller-supplied project
// identifier; ownership lives on the user document, not here.
type Project struct {
	ID          string        `json:"projectId" bson:"_id"`
	Name        string        `json:"name,omitempty" bson:"name,omitempty"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	CurrentStep int           `json:"currentStep" bson:"currentStep"`
	Steps       []Step        `json:"step" bson:"step"`
	Achievement []Achievement `json:"achievement" bson:"achievement"`
}

// Step is one ordered stage of a project.
type Step struct {
	Name       string      `json:"name,omitempty" bson:"name,omitempty"`
	Directions []Direction `json:"itemListElement" bson:"itemListElement"`
}

// Direction is a single instruction inside a step. IDs are assumed unique
// within a project; lookups take the first match in scan order.
type Direction struct {
	ID          string `json:"id" bson:"id"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Complete    bool   `json:"complete" bson:"complete"`
}

// Achievement is a project-scoped achievement with a current completion flag.
// Distinct from model.AchievementRecord, which is the immutable history entry
// written to the user document when the flag turns true.
type Achievement struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Complete bool   `json:"complete" bson:"complete"`
}
