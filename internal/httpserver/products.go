package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"burgerdelicia/internal/catalog"
	"burgerdelicia/internal/domain"
)

const defaultRecommendLimit = 4

// listProducts handles GET /api/products with optional filter and sort query
// parameters. No parameters returns the whole catalog in menu order.
func (s *Server) listProducts(c *gin.Context) {
	criteria, err := parseCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products := s.deps.Catalog.Filter(criteria)
	if raw, ok := c.GetQuery("sort"); ok {
		products = s.deps.Catalog.Sort(products, catalog.ParseSortKey(raw))
	}

	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"total": len(products), "results": products})
}

func parseCriteria(c *gin.Context) (catalog.Criteria, error) {
	var criteria catalog.Criteria

	if raw, ok := c.GetQuery("category"); ok {
		category := domain.Category(raw)
		if !category.Valid() {
			return criteria, errors.New("unknown category " + strconv.Quote(raw))
		}
		criteria.Category = category
	}
	for _, raw := range c.QueryArray("tag") {
		criteria.Tags = append(criteria.Tags, domain.Tag(raw))
	}
	if raw, ok := c.GetQuery("maxPrice"); ok {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return criteria, errors.New("bad maxPrice " + strconv.Quote(raw))
		}
		criteria.MaxPrice = &maxPrice
	}
	if raw, ok := c.GetQuery("maxCalories"); ok {
		maxCalories, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, errors.New("bad maxCalories " + strconv.Quote(raw))
		}
		criteria.MaxCalories = &maxCalories
	}
	if raw, ok := c.GetQuery("maxSpiceLevel"); ok {
		maxSpice, err := strconv.Atoi(raw)
		if err != nil {
			return criteria, errors.New("bad maxSpiceLevel " + strconv.Quote(raw))
		}
		criteria.MaxSpiceLevel = &maxSpice
	}
	if raw, ok := c.GetQuery("available"); ok {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return criteria, errors.New("bad available " + strconv.Quote(raw))
		}
		criteria.Available = &available
	}
	criteria.ExcludedAllergens = c.QueryArray("excludeAllergen")
	criteria.Search = c.Query("q")

	return criteria, nil
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.deps.Catalog.ByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) recommendProducts(c *gin.Context) {
	limit := defaultRecommendLimit
	if raw, ok := c.GetQuery("limit"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad limit"})
			return
		}
		limit = parsed
	}

	products, err := s.deps.Catalog.Recommend(c.Param("id"), limit)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"results": products})
}

type categoryResponse struct {
	domain.CategoryInfo
	ProductCount int `json:"productCount"`
}

func (s *Server) listCategories(c *gin.Context) {
	out := make([]categoryResponse, 0, len(domain.Categories()))
	for _, category := range domain.Categories() {
		out = append(out, categoryResponse{
			CategoryInfo: category.Info(),
			ProductCount: len(s.deps.Catalog.ByCategory(category)),
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": out})
}

// restaurantInfo handles GET /api/info: the storefront identity plus the
// delivery fee actually charged.
func (s *Server) restaurantInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"restaurant":  domain.Restaurant(),
		"deliveryFee": s.deps.FeePolicy.DeliveryFee,
		"whatsapp":    s.deps.WhatsAppNumber,
	})
}

func (s *Server) bestSellers(c *gin.Context) {
	products := s.deps.Catalog.BestSellers()
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"results": products})
}

func (s *Server) catalogStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"summary":    s.deps.Catalog.Stats(),
		"categories": s.deps.Catalog.StatsByCategory(),
	})
}
