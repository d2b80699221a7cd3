package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/plateformprojob/backend/models"
)

// CreateApplication writes a new application document and returns its
// generated ID
func (f *FirestoreClient) CreateApplication(ctx context.Context, app *models.Application) error {
	docRef := f.client.Collection(applicationsCollection).NewDoc()
	if _, err := docRef.Set(ctx, app); err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	app.ID = docRef.ID
	return nil
}

// GetApplication retrieves an application by document ID
func (f *FirestoreClient) GetApplication(ctx context.Context, id string) (*models.Application, error) {
	doc, err := f.client.Collection(applicationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("application %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	var app models.Application
	if err := doc.DataTo(&app); err != nil {
		return nil, fmt.Errorf("failed to parse application data: %w", err)
	}

	app.ID = doc.Ref.ID
	return &app, nil
}

// HasActiveApplication reports whether the candidate already has a
// non-withdrawn application for the job. This is a read-then-write
// pre-check: concurrent submissions can both pass it.
func (f *FirestoreClient) HasActiveApplication(ctx context.Context, candidateID, jobID string) (bool, error) {
	iter := f.client.Collection(applicationsCollection).
		Where("candidateId", "==", candidateID).
		Where("jobId", "==", jobID).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to query applications: %w", err)
		}

		var app models.Application
		if err := doc.DataTo(&app); err != nil {
			return false, fmt.Errorf("failed to parse application data: %w", err)
		}
		if app.Status != models.StatusWithdrawn {
			return true, nil
		}
	}
}

// ListApplicationsByCandidate returns a candidate's applications,
// newest first
func (f *FirestoreClient) ListApplicationsByCandidate(ctx context.Context, candidateID string) ([]models.Application, error) {
	return f.listApplications(ctx, "candidateId", candidateID)
}

// ListApplicationsByJob returns a job's applications, newest first
func (f *FirestoreClient) ListApplicationsByJob(ctx context.Context, jobID string) ([]models.Application, error) {
	return f.listApplications(ctx, "jobId", jobID)
}

func (f *FirestoreClient) listApplications(ctx context.Context, field, value string) ([]models.Application, error) {
	iter := f.client.Collection(applicationsCollection).
		Where(field, "==", value).
		OrderBy("appliedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var apps []models.Application
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list applications: %w", err)
		}

		var app models.Application
		if err := doc.DataTo(&app); err != nil {
			return nil, fmt.Errorf("failed to parse application data: %w", err)
		}
		app.ID = doc.Ref.ID
		apps = append(apps, app)
	}

	return apps, nil
}

// UpdateApplicationStatus writes a new status on the application
func (f *FirestoreClient) UpdateApplicationStatus(ctx context.Context, id, newStatus string) error {
	_, err := f.client.Collection(applicationsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	return nil
}
