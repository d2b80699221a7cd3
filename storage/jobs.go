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

// CreateJob writes a new job document and returns its generated ID
func (f *FirestoreClient) CreateJob(ctx context.Context, job *models.Job) error {
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	docRef := f.client.Collection(jobsCollection).NewDoc()
	if _, err := docRef.Set(ctx, job); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	job.ID = docRef.ID
	return nil
}

// GetJob retrieves a job by document ID
func (f *FirestoreClient) GetJob(ctx context.Context, id string) (*models.Job, error) {
	doc, err := f.client.Collection(jobsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job models.Job
	if err := doc.DataTo(&job); err != nil {
		return nil, fmt.Errorf("failed to parse job data: %w", err)
	}

	job.ID = doc.Ref.ID
	return &job, nil
}

// ListJobs returns jobs ordered by creation time, newest first. When
// recruiterID is non-empty only that recruiter's jobs are returned.
func (f *FirestoreClient) ListJobs(ctx context.Context, recruiterID string, limit int) ([]models.Job, error) {
	query := f.client.Collection(jobsCollection).OrderBy("createdAt", firestore.Desc)
	if recruiterID != "" {
		query = f.client.Collection(jobsCollection).
			Where("recruiterId", "==", recruiterID).
			OrderBy("createdAt", firestore.Desc)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var jobs []models.Job
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list jobs: %w", err)
		}

		var job models.Job
		if err := doc.DataTo(&job); err != nil {
			return nil, fmt.Errorf("failed to parse job data: %w", err)
		}
		job.ID = doc.Ref.ID
		jobs = append(jobs, job)
	}

	return jobs, nil
}

// UpdateJob merges the given fields into the job document
func (f *FirestoreClient) UpdateJob(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updatedAt"] = time.Now()

	_, err := f.client.Collection(jobsCollection).Doc(id).Set(ctx, updates, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

// IncrementApplicationCount bumps the job's application counter by one.
// Not transactional with the application write; the counter is advisory.
func (f *FirestoreClient) IncrementApplicationCount(ctx context.Context, jobID string) error {
	_, err := f.client.Collection(jobsCollection).Doc(jobID).Update(ctx, []firestore.Update{
		{Path: "applicationCount", Value: firestore.Increment(1)},
	})
	if err != nil {
		return fmt.Errorf("failed to increment application count: %w", err)
	}
	return nil
}
