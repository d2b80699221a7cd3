package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/plateformprojob/backend/config"
	"github.com/plateformprojob/backend/models"
)

const (
	usersCollection        = "users"
	jobsCollection         = "jobs"
	applicationsCollection = "applications"
)

// Sentinel errors returned by the store. Handlers map these onto HTTP
// status codes.
var (
	ErrNotFound      = errors.New("document not found")
	ErrAlreadyExists = errors.New("document already exists")
)

// FirestoreClient wraps Firestore operations over the users, jobs and
// applications collections.
type FirestoreClient struct {
	client *firestore.Client
}

// NewFirestoreClient creates a new Firestore client
func NewFirestoreClient(ctx context.Context, cfg *config.Config) (*FirestoreClient, error) {
	client, err := firestore.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return &FirestoreClient{client: client}, nil
}

// Close closes the Firestore client
func (f *FirestoreClient) Close() error {
	return f.client.Close()
}

// CreateUser creates a new user document. The caller may set user.ID to
// reuse an identity from the auth provider; otherwise an ID is generated.
func (f *FirestoreClient) CreateUser(ctx context.Context, user *models.UserProfile) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	// Reject duplicate email before writing
	existing, err := f.GetUserByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to check user existence: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("user with email %s: %w", user.Email, ErrAlreadyExists)
	}

	docRef := f.client.Collection(usersCollection).Doc(user.ID)
	if user.ID == "" {
		docRef = f.client.Collection(usersCollection).NewDoc()
	}

	if _, err := docRef.Set(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = docRef.ID
	return nil
}

// GetUser retrieves a user by document ID
func (f *FirestoreClient) GetUser(ctx context.Context, id string) (*models.UserProfile, error) {
	doc, err := f.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.UserProfile
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (f *FirestoreClient) GetUserByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	iter := f.client.Collection(usersCollection).Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, fmt.Errorf("user with email %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	var user models.UserProfile
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to parse user data: %w", err)
	}

	user.ID = doc.Ref.ID
	return &user, nil
}

// UpdateUser merges the given fields into the user document
func (f *FirestoreClient) UpdateUser(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	_, err := f.client.Collection(usersCollection).Doc(id).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdateUserCV stores the candidate's current CV reference
func (f *FirestoreClient) UpdateUserCV(ctx context.Context, id, cvUrl, cvPublicID string) error {
	return f.UpdateUser(ctx, id, map[string]interface{}{
		"cvUrl":      cvUrl,
		"cvPublicId": cvPublicID,
	})
}

// ConsumePostCredit decrements one job-post credit, preferring the free
// allotment. Returns an error if the user has no credits left.
func (f *FirestoreClient) ConsumePostCredit(ctx context.Context, id string) error {
	user, err := f.GetUser(ctx, id)
	if err != nil {
		return err
	}

	field := "freePostsRemaining"
	if user.FreePostsRemaining <= 0 {
		if user.PurchasedPostsRemaining <= 0 {
			return errors.New("no job post credits remaining")
		}
		field = "purchasedPostsRemaining"
	}

	_, err = f.client.Collection(usersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: field, Value: firestore.Increment(-1)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to consume post credit: %w", err)
	}
	return nil
}

// AddPurchasedCredit increments purchasedPostsRemaining and records the
// checkout session so it cannot be credited twice.
func (f *FirestoreClient) AddPurchasedCredit(ctx context.Context, id, sessionID string) error {
	_, err := f.client.Collection(usersCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "purchasedPostsRemaining", Value: firestore.Increment(1)},
		{Path: "fulfilledSessions", Value: firestore.ArrayUnion(sessionID)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to add purchased credit: %w", err)
	}
	return nil
}

// SaveJob adds or removes a job ID from the user's saved set
func (f *FirestoreClient) SaveJob(ctx context.Context, userID, jobID string, saved bool) error {
	var value interface{} = firestore.ArrayUnion(jobID)
	if !saved {
		value = firestore.ArrayRemove(jobID)
	}

	_, err := f.client.Collection(usersCollection).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "savedJobs", Value: value},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to update saved jobs: %w", err)
	}
	return nil
}
