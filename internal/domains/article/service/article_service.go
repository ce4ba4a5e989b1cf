package service

import (
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"memepmw-backend/internal/domains/article"
	"memepmw-backend/pkg/logger"
)

// MediaStorage is the slice of object storage the article service needs.
// Satisfied by infrastructure/storage.MinIOStorage.
type MediaStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type articleServiceImpl struct {
	repository article.Repository
	storage    MediaStorage
}

func NewArticleService(repo article.Repository, storage MediaStorage) article.Service {
	return &articleServiceImpl{
		repository: repo,
		storage:    storage,
	}
}

func (s *articleServiceImpl) Create(ctx context.Context, authorID uuid.UUID, req *article.CreateArticleReq) (*article.ArticleResp, error) {
	if req == nil {
		return nil, fmt.Errorf("create article: invalid request")
	}

	entity, err := article.NewArticle(req.Title, req.Content, authorID)
	if err != nil {
		return nil, err
	}

	entity.Summary = req.Summary
	entity.CategoryID = req.CategoryID
	entity.ImageURL = req.ImageURL
	if req.Tags != nil {
		entity.Tags = req.Tags
	}
	if req.Publish {
		entity.Publish(req.PublishAt)
	}

	slugExists, err := s.repository.ExistsBySlug(ctx, entity.Slug, nil)
	if err != nil {
		logger.Error("Create: check slug exists failed", err)
		return nil, fmt.Errorf("create article: failed to verify slug uniqueness")
	}
	if slugExists {
		// Keep the slug unique without bouncing the request back.
		entity.Slug = fmt.Sprintf("%s-%s", entity.Slug, strconv.FormatInt(time.Now().Unix(), 36))
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		logger.Error("Create: repository create failed", err)
		return nil, err
	}

	return article.ArticleToResp(created), nil
}

func (s *articleServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*article.ArticleResp, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return article.ArticleToResp(entity), nil
}

func (s *articleServiceImpl) GetBySlug(ctx context.Context, slug string) (*article.ArticleResp, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, article.ErrArticleNotFound
	}

	entity, err := s.repository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	// A failed counter bump never fails the read.
	if err := s.repository.IncrementViewCount(ctx, entity.ID); err != nil {
		logger.Error("GetBySlug: increment view count failed", err)
	} else {
		entity.ViewCount++
	}

	return article.ArticleToResp(entity), nil
}

func (s *articleServiceImpl) ListPublished(ctx context.Context, q *article.ListQuery) ([]*article.ArticleResp, int, error) {
	if q == nil {
		q = &article.ListQuery{}
	}
	q.Normalize()

	entities, total, err := s.repository.ListPublished(ctx, q)
	if err != nil {
		logger.Error("ListPublished: repository list failed", err)
		return nil, 0, fmt.Errorf("list articles: failed to fetch")
	}

	return toListResps(entities), total, nil
}

func (s *articleServiceImpl) ListAll(ctx context.Context, page, limit int) ([]*article.ArticleResp, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	entities, total, err := s.repository.ListAll(ctx, (page-1)*limit, limit)
	if err != nil {
		logger.Error("ListAll: repository list failed", err)
		return nil, 0, fmt.Errorf("list articles: failed to fetch")
	}

	return toListResps(entities), total, nil
}

func (s *articleServiceImpl) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]*article.ArticleResp, error) {
	entities, err := s.repository.ListByIDs(ctx, ids)
	if err != nil {
		logger.Error("ListByIDs: repository list failed", err)
		return nil, fmt.Errorf("list articles by ids: failed to fetch")
	}

	return toListResps(entities), nil
}

func (s *articleServiceImpl) Update(ctx context.Context, id uuid.UUID, req *article.UpdateArticleReq) (*article.ArticleResp, error) {
	if req == nil {
		return nil, fmt.Errorf("update article: invalid request")
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if err := entity.Retitle(*req.Title); err != nil {
			return nil, err
		}

		slugExists, err := s.repository.ExistsBySlug(ctx, entity.Slug, &id)
		if err != nil {
			logger.Error("Update: check slug exists failed", err)
			return nil, fmt.Errorf("update article: failed to verify slug uniqueness")
		}
		if slugExists {
			return nil, article.ErrDuplicateSlug
		}
	}
	if req.Summary != nil {
		entity.Summary = req.Summary
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, article.ErrInvalidContent
		}
		entity.Content = *req.Content
	}
	if req.CategoryID != nil {
		entity.CategoryID = req.CategoryID
	}
	if req.ImageURL != nil {
		entity.ImageURL = req.ImageURL
	}
	if req.Tags != nil {
		entity.Tags = req.Tags
	}

	updated, err := s.repository.Update(ctx, entity)
	if err != nil {
		logger.Error("Update: repository update failed", err)
		return nil, err
	}

	return article.ArticleToResp(updated), nil
}

func (s *articleServiceImpl) Publish(ctx context.Context, id uuid.UUID, req *article.PublishArticleReq) (*article.ArticleResp, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req == nil {
		req = &article.PublishArticleReq{}
	}
	entity.Publish(req.At)

	updated, err := s.repository.Update(ctx, entity)
	if err != nil {
		logger.Error("Publish: repository update failed", err)
		return nil, err
	}

	return article.ArticleToResp(updated), nil
}

func (s *articleServiceImpl) Unpublish(ctx context.Context, id uuid.UUID) (*article.ArticleResp, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entity.Unpublish()

	updated, err := s.repository.Update(ctx, entity)
	if err != nil {
		logger.Error("Unpublish: repository update failed", err)
		return nil, err
	}

	return article.ArticleToResp(updated), nil
}

func (s *articleServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repository.Delete(ctx, id)
}

func (s *articleServiceImpl) UploadImage(ctx context.Context, id uuid.UUID, filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", article.ErrInvalidImage
	}

	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", article.ErrInvalidImage
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	name := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	if name == "" || name == "." {
		name = "cover"
	}
	key := fmt.Sprintf("articles/%s/%s%s", entity.ID, name, ext)

	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		logger.Error("UploadImage: storage upload failed", err)
		return "", article.NewPersistenceError("upload image for", err)
	}

	entity.ImageURL = &url
	if _, err := s.repository.Update(ctx, entity); err != nil {
		logger.Error("UploadImage: repository update failed", err)
		return "", err
	}

	return url, nil
}

// ExportXLSX produces the admin article spreadsheet.
func (s *articleServiceImpl) ExportXLSX(ctx context.Context) ([]byte, error) {
	const sheet = "Articles"

	entities, _, err := s.repository.ListAll(ctx, 0, 10000)
	if err != nil {
		logger.Error("ExportXLSX: repository list failed", err)
		return nil, fmt.Errorf("export articles: failed to fetch")
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("export articles: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Title", "Slug", "Category", "Status", "Published At", "Views", "Comments", "Reactions"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, a := range entities {
		categoryName := ""
		if a.CategoryName != nil {
			categoryName = *a.CategoryName
		}
		publishedAt := ""
		if a.PublishedAt != nil {
			publishedAt = a.PublishedAt.Format("2006-01-02 15:04")
		}

		values := []interface{}{
			a.ID.String(), a.Title, a.Slug, categoryName, a.Status,
			publishedAt, a.ViewCount, a.CommentCount, a.ReactionCount,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export articles: %w", err)
	}

	return buf.Bytes(), nil
}

func toListResps(entities []*article.Article) []*article.ArticleResp {
	resps := make([]*article.ArticleResp, 0, len(entities))
	for _, entity := range entities {
		resps = append(resps, article.ArticleToListResp(entity))
	}
	return resps
}
