package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/notable/notes-api/internal/core/domain"
	"github.com/notable/notes-api/internal/core/ports"
)

const collectionNotes = "notes"

// NoteRepository implements ports.NoteRepository on MongoDB. Checklist items
// are embedded in the note document, so replacing the item set and cascading
// deletion are single atomic document writes.
type NoteRepository struct {
	col *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{col: db.Collection(collectionNotes)}
}

// Create inserts a new note document and assigns its id.
func (r *NoteRepository) Create(ctx context.Context, n *domain.Note) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n.ID = primitive.NewObjectID().Hex()
	_, err := r.col.InsertOne(ctx, n)
	return err
}

// FindByID retrieves a note by id. Soft-deleted notes are returned too; the
// caller decides what deleted means for its operation.
func (r *NoteRepository) FindByID(ctx context.Context, id string) (*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var n domain.Note
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, err
	}
	n.SortItems()
	return &n, nil
}

// List returns the notes matching filter, most-recently-modified first.
func (r *NoteRepository) List(ctx context.Context, filter ports.ListNotesFilter) ([]*domain.Note, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"user_id": filter.UserID}
	if filter.Type != "" {
		query["type"] = string(filter.Type)
	}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"body": pattern},
		}
	}
	if !filter.IncludeDeleted {
		query["deleted_at"] = nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "modified_at", Value: -1}})
	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notes := make([]*domain.Note, 0)
	for cursor.Next(ctx) {
		var n domain.Note
		if err := cursor.Decode(&n); err != nil {
			return nil, err
		}
		n.SortItems()
		notes = append(notes, &n)
	}
	return notes, cursor.Err()
}

// Update persists the full mutable state of the note in one document write,
// so an item-set replacement can never be observed half-applied.
func (r *NoteRepository) Update(ctx context.Context, n *domain.Note) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"title":       n.Title,
			"type":        string(n.Type),
			"body":        n.Body,
			"items":       n.Items,
			"tags":        n.Tags,
			"modified_at": n.ModifiedAt,
		},
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": n.ID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// SetDeletedAt stamps or clears the soft-delete marker.
func (r *NoteRepository) SetDeletedAt(ctx context.Context, id string, deletedAt *time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var update bson.M
	if deletedAt != nil {
		update = bson.M{"$set": bson.M{"deleted_at": deletedAt.UTC()}}
	} else {
		update = bson.M{"$unset": bson.M{"deleted_at": ""}}
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// Delete permanently removes the note document; the embedded items go with it.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// Count counts the user's notes, optionally narrowed to one type and
// optionally including soft-deleted documents.
func (r *NoteRepository) Count(ctx context.Context, userID string, noteType domain.NoteType, includeDeleted bool) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"user_id": userID}
	if noteType != "" {
		query["type"] = string(noteType)
	}
	if !includeDeleted {
		query["deleted_at"] = nil
	}

	return r.col.CountDocuments(ctx, query)
}

// ListTags projects the tag lists of the user's active notes.
func (r *NoteRepository) ListTags(ctx context.Context, userID string) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"user_id": userID, "deleted_at": nil}
	opts := options.Find().SetProjection(bson.M{"tags": 1})

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lists [][]string
	for cursor.Next(ctx) {
		var doc struct {
			Tags []string `bson:"tags"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		lists = append(lists, doc.Tags)
	}
	return lists, cursor.Err()
}
