package audit

import (
	"context"
	"time"

	mg "bank_clients/internal/config/connections/mongo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const LoginEventsCollection = "login_events"

// LoginEvent is one record of the operational login stream: who tried to log
// in and what came of it. Diagnostic data, not part of the HTTP contract.
type LoginEvent struct {
	ID             any       `bson:"_id,omitempty" json:"id,omitempty"`
	PassportSeries string    `bson:"passport_series" json:"passport_series"`
	PassportNumber string    `bson:"passport_number" json:"passport_number"`
	Outcome        string    `bson:"outcome" json:"outcome"`
	ClientID       *int64    `bson:"client_id,omitempty" json:"client_id,omitempty"`
	Detail         *string   `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

type LoginTrail struct {
	m *mg.Mongo
}

func NewLoginTrail(m *mg.Mongo) *LoginTrail {
	return &LoginTrail{m: m}
}

// Record inserts one login event. Callers treat failures as best-effort: an
// unreachable audit store never changes the login response.
func (t *LoginTrail) Record(ctx context.Context, ev LoginEvent) error {
	if t == nil || t.m == nil || t.m.Database == nil {
		return mongo.ErrClientDisconnected
	}

	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	doc := bson.D{
		{Key: "passport_series", Value: ev.PassportSeries},
		{Key: "passport_number", Value: ev.PassportNumber},
		{Key: "outcome", Value: ev.Outcome},
		{Key: "client_id", Value: ev.ClientID},
		{Key: "detail", Value: ev.Detail},
		{Key: "created_at", Value: ev.CreatedAt},
	}

	_, err := t.m.Database.Collection(LoginEventsCollection).InsertOne(ctx, doc, options.InsertOne())
	return err
}

// Recent returns the newest events first, capped at limit.
func (t *LoginTrail) Recent(ctx context.Context, limit int64) ([]LoginEvent, error) {
	if t == nil || t.m == nil || t.m.Database == nil {
		return nil, mongo.ErrClientDisconnected
	}
	if limit <= 0 {
		limit = 50
	}

	coll := t.m.Database.Collection(LoginEventsCollection)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	events := make([]LoginEvent, 0)
	for cur.Next(ctx) {
		var ev LoginEvent
		if err := cur.Decode(&ev); err != nil {
			continue
		}
		events = append(events, ev)
	}
	return events, cur.Err()
}
