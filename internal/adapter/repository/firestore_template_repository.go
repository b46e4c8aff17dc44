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

const templatesCollection = "templates"

type firestoreTemplateRepository struct {
	client *firestore.Client
}

func NewFirestoreTemplateRepository(client *firestore.Client) repository.TemplateRepository {
	return &firestoreTemplateRepository{
		client: client,
	}
}

// Upsert relies on Create failing for an existing document, so two servers
// seeding at once still end up with one record per template.
func (r *firestoreTemplateRepository) Upsert(ctx context.Context, template *entity.Template) (bool, error) {
	_, err := r.client.Collection(templatesCollection).Doc(template.ID).Create(ctx, template)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return false, nil
		}
		return false, errors.Internal("Failed to seed template", err)
	}
	return true, nil
}

func (r *firestoreTemplateRepository) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	doc, err := r.client.Collection(templatesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Template", err)
		}
		return nil, errors.Internal("Failed to get template", err)
	}

	var template entity.Template
	if err := doc.DataTo(&template); err != nil {
		return nil, errors.Internal("Failed to parse template data", err)
	}

	return &template, nil
}

func (r *firestoreTemplateRepository) List(ctx context.Context) ([]*entity.Template, error) {
	iter := r.client.Collection(templatesCollection).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	templates := []*entity.Template{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate templates", err)
		}

		var template entity.Template
		if err := doc.DataTo(&template); err != nil {
			return nil, errors.Internal("Failed to parse template data", err)
		}
		templates = append(templates, &template)
	}

	return templates, nil
}

func (r *firestoreTemplateRepository) Count(ctx context.Context) (int64, error) {
	results, err := r.client.Collection(templatesCollection).NewAggregationQuery().WithCount("total").Get(ctx)
	if err != nil {
		return 0, errors.Internal("Failed to count templates", err)
	}
	return aggregateInt(results["total"]), nil
}
