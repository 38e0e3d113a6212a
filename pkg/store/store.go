// Package store persists build records so diagrams can be listed and
// re-fetched without re-running the pipeline.
//
// Two backends are provided:
//   - memory: in-process storage for development and tests
//   - mongo: MongoDB-backed storage for server deployments
package store

import (
	"context"
	"errors"
	"time"

	"github.com/azmapper/azmap/pkg/model"
)

// ErrNotFound is returned when a build record does not exist.
var ErrNotFound = errors.New("build not found")

// BuildRecord captures the outcome of one pipeline execution.
type BuildRecord struct {
	ID               string                    `json:"id" bson:"_id"`
	SubscriptionID   string                    `json:"subscription_id" bson:"subscription_id"`
	SubscriptionName string                    `json:"subscription_name,omitempty" bson:"subscription_name,omitempty"`
	Config           model.VisualizationConfig `json:"config" bson:"config"`
	GraphHash        string                    `json:"graph_hash" bson:"graph_hash"`
	DocumentHash     string                    `json:"document_hash" bson:"document_hash"`
	NodeCount        int                       `json:"node_count" bson:"node_count"`
	EdgeCount        int                       `json:"edge_count" bson:"edge_count"`
	Formats          []string                  `json:"formats" bson:"formats"`
	DOT              string                    `json:"dot,omitempty" bson:"dot,omitempty"`
	CreatedAt        time.Time                 `json:"created_at" bson:"created_at"`
}

// Archive is the interface for build record storage backends.
type Archive interface {
	// Save stores a build record, replacing any record with the same ID.
	Save(ctx context.Context, record *BuildRecord) error

	// Get retrieves a build record by ID.
	// Returns ErrNotFound if the record does not exist.
	Get(ctx context.Context, id string) (*BuildRecord, error)

	// List returns the most recent records for a subscription, newest first.
	// An empty subscription ID lists across all subscriptions.
	List(ctx context.Context, subscriptionID string, limit int) ([]*BuildRecord, error)

	// Delete removes a build record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
