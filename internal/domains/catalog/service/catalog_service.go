package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"storefront-backend/internal/domains/catalog/model"
	"storefront-backend/internal/domains/catalog/repository"
	"storefront-backend/internal/infrastructure/storage"
	"storefront-backend/internal/shared/utils"
)

const productCacheTTL = 10 * time.Minute

type catalogService struct {
	repo    repository.RepositoryInterface
	cache   *redis.Client
	storage *storage.MinIOStorage
}

func NewCatalogService(repo repository.RepositoryInterface, cache *redis.Client, store *storage.MinIOStorage) ServiceInterface {
	return &catalogService{
		repo:    repo,
		cache:   cache,
		storage: store,
	}
}

func productCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("catalog:product:%s", id)
}

func (s *catalogService) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	basePrice, err := decimal.NewFromString(req.BasePrice)
	if err != nil {
		return nil, model.ErrInvalidPrice
	}

	product := &model.Product{
		Name:        strings.TrimSpace(req.Name),
		Slug:        utils.GenerateSlug(req.Name),
		Description: req.Description,
		BrandID:     req.BrandID,
		CategoryID:  req.CategoryID,
		BasePrice:   basePrice,
		IsActive:    true,
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}

	variants := make([]model.Variant, 0, len(req.Variants))
	for _, vr := range req.Variants {
		if err := vr.Validate(); err != nil {
			return nil, err
		}

		var override *decimal.Decimal
		if vr.PriceOverride != nil {
			d, err := decimal.NewFromString(*vr.PriceOverride)
			if err != nil || d.LessThanOrEqual(decimal.Zero) {
				return nil, model.ErrInvalidPrice
			}
			override = &d
		}

		variant := &model.Variant{
			ProductID:     created.ID,
			SKU:           strings.ToUpper(strings.TrimSpace(vr.SKU)),
			Color:         vr.Color,
			Size:          vr.Size,
			PriceOverride: override,
			Stock:         vr.Stock,
			IsActive:      true,
		}

		createdVariant, err := s.repo.CreateVariant(ctx, variant)
		if err != nil {
			return nil, err
		}
		variants = append(variants, *createdVariant)
	}

	return &model.ProductResponse{Product: *created, Variants: variants}, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*model.ProductResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, productCacheKey(id)).Bytes(); err == nil {
			var resp model.ProductResponse
			if json.Unmarshal(cached, &resp) == nil {
				return &resp, nil
			}
		}
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, model.NewProductNotFound(id.String())
	}

	variants, err := s.repo.ListVariantsByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &model.ProductResponse{Product: *product, Variants: variants}

	if s.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, productCacheKey(id), data, productCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("product_id", id.String()).Msg("Failed to cache product")
			}
		}
	}

	return resp, nil
}

func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*model.ProductResponse, error) {
	product, err := s.repo.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, model.NewProductNotFound(slug)
	}

	variants, err := s.repo.ListVariantsByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	return &model.ProductResponse{Product: *product, Variants: variants}, nil
}

func (s *catalogService) ListProducts(ctx context.Context, page, pageSize int) ([]*model.Product, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return s.repo.ListProducts(ctx, (page-1)*pageSize, pageSize)
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, req *model.UpdateProductRequest) (*model.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, model.NewProductNotFound(id.String())
	}

	if req.Name != nil {
		existing.Name = strings.TrimSpace(*req.Name)
		existing.Slug = utils.GenerateSlug(existing.Name)
	}
	if req.Description != nil {
		existing.Description = req.Description
	}
	if req.BrandID != nil {
		existing.BrandID = req.BrandID
	}
	if req.CategoryID != nil {
		existing.CategoryID = req.CategoryID
	}
	if req.BasePrice != nil {
		price, err := decimal.NewFromString(*req.BasePrice)
		if err != nil || price.LessThanOrEqual(decimal.Zero) {
			return nil, model.ErrInvalidPrice
		}
		existing.BasePrice = price
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	updated, err := s.repo.UpdateProduct(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidateProductCache(ctx, id)

	variants, err := s.repo.ListVariantsByProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.ProductResponse{Product: *updated, Variants: variants}, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		return err
	}

	s.invalidateProductCache(ctx, id)

	if s.storage != nil {
		if err := s.storage.DeleteByPrefix(ctx, fmt.Sprintf("products/%s/", id)); err != nil {
			log.Warn().Err(err).Str("product_id", id.String()).Msg("Failed to delete product images")
		}
	}

	return nil
}

func (s *catalogService) GetVariantWithProduct(ctx context.Context, variantID uuid.UUID) (*model.VariantWithProduct, error) {
	vp, err := s.repo.GetVariantWithProduct(ctx, variantID)
	if err != nil {
		return nil, err
	}
	if vp == nil {
		return nil, model.NewVariantNotFound(variantID.String())
	}
	return vp, nil
}

func (s *catalogService) UploadVariantImage(ctx context.Context, variantID uuid.UUID, data []byte, contentType string) (string, error) {
	variant, err := s.repo.GetVariantByID(ctx, variantID)
	if err != nil {
		return "", err
	}
	if variant == nil {
		return "", model.NewVariantNotFound(variantID.String())
	}

	key := fmt.Sprintf("products/%s/%s_original", variant.ProductID, variant.ID)
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", model.NewRepositoryError("upload image", err)
	}

	if err := s.repo.SetVariantImage(ctx, variantID, url); err != nil {
		return "", err
	}

	s.invalidateProductCache(ctx, variant.ProductID)

	return url, nil
}

func (s *catalogService) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return s.repo.ListBrands(ctx)
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *catalogService) invalidateProductCache(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, productCacheKey(id)).Err(); err != nil {
		log.Warn().Err(err).Str("product_id", id.String()).Msg("Failed to invalidate product cache")
	}
}
