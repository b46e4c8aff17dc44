package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"motionstock/internal/domain/entity"
	"motionstock/internal/domain/repository"
	"motionstock/pkg/errors"
)

const projectsCollection = "projects"

type firestoreProjectRepository struct {
	client *firestore.Client
}

func NewFirestoreProjectRepository(client *firestore.Client) repository.ProjectRepository {
	return &firestoreProjectRepository{
		client: client,
	}
}

func (r *firestoreProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	_, err := r.client.Collection(projectsCollection).Doc(project.ID).Create(ctx, project)
	if err != nil {
		return errors.Internal("Failed to create project", err)
	}
	return nil
}

func (r *firestoreProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	doc, err := r.client.Collection(projectsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Project", err)
		}
		return nil, errors.Internal("Failed to get project", err)
	}

	var project entity.Project
	if err := doc.DataTo(&project); err != nil {
		return nil, errors.Internal("Failed to parse project data", err)
	}

	return &project, nil
}

func (r *firestoreProjectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	iter := r.client.Collection(projectsCollection).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	projects := []*entity.Project{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate projects", err)
		}

		var project entity.Project
		if err := doc.DataTo(&project); err != nil {
			return nil, errors.Internal("Failed to parse project data", err)
		}
		projects = append(projects, &project)
	}

	return projects, nil
}

func (r *firestoreProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	ref := r.client.Collection(projectsCollection).Doc(project.ID)
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "name", Value: project.Name},
		{Path: "config", Value: project.Config},
		{Path: "updatedAt", Value: project.UpdatedAt},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Project", err)
		}
		return errors.Internal("Failed to update project", err)
	}

	return nil
}

func (r *firestoreProjectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(projectsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Project", err)
		}
		return errors.Internal("Failed to delete project", err)
	}

	return nil
}
