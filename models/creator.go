package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Creator is a human expert registered in the creator registry.
// Collection: creators
type Creator struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatorID string             `bson:"creator_id" json:"creatorId"`
	Name      string             `bson:"name" json:"name"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

// Generator is an automated content generator configuration.
// Collection: generators
type Generator struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GeneratorID    string             `bson:"generator_id" json:"generatorId"`
	Name           string             `bson:"name" json:"name"`
	PromptTemplate string             `bson:"prompt_template,omitempty" json:"promptTemplate,omitempty"`
	ModelParams    map[string]any     `bson:"model_params,omitempty" json:"modelParams,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
}
