package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"memepmw-backend/internal/config"
	infraCache "memepmw-backend/internal/infrastructure/cache"
	"memepmw-backend/internal/infrastructure/database"
	"memepmw-backend/internal/infrastructure/storage"
	"memepmw-backend/pkg/cache"
	"memepmw-backend/pkg/jwt"

	"memepmw-backend/internal/domains/article"
	articleHandler "memepmw-backend/internal/domains/article/handler"
	articleRepo "memepmw-backend/internal/domains/article/repository"
	articleService "memepmw-backend/internal/domains/article/service"

	"memepmw-backend/internal/domains/category"
	categoryHandler "memepmw-backend/internal/domains/category/handler"
	categoryRepo "memepmw-backend/internal/domains/category/repository"
	categoryService "memepmw-backend/internal/domains/category/service"

	"memepmw-backend/internal/domains/comment"
	commentHandler "memepmw-backend/internal/domains/comment/handler"
	commentRepo "memepmw-backend/internal/domains/comment/repository"
	commentService "memepmw-backend/internal/domains/comment/service"

	"memepmw-backend/internal/domains/layout"
	layoutHandler "memepmw-backend/internal/domains/layout/handler"
	layoutProvider "memepmw-backend/internal/domains/layout/provider"
	layoutRepo "memepmw-backend/internal/domains/layout/repository"
	layoutService "memepmw-backend/internal/domains/layout/service"

	"memepmw-backend/internal/domains/page"
	pageHandler "memepmw-backend/internal/domains/page/handler"
	pageRepo "memepmw-backend/internal/domains/page/repository"
	pageService "memepmw-backend/internal/domains/page/service"

	"memepmw-backend/internal/domains/reaction"
	reactionHandler "memepmw-backend/internal/domains/reaction/handler"
	reactionRepo "memepmw-backend/internal/domains/reaction/repository"
	reactionService "memepmw-backend/internal/domains/reaction/service"

	"memepmw-backend/internal/domains/settings"
	settingsHandler "memepmw-backend/internal/domains/settings/handler"
	settingsRepo "memepmw-backend/internal/domains/settings/repository"
	settingsService "memepmw-backend/internal/domains/settings/service"

	"memepmw-backend/internal/domains/user"
	userHandler "memepmw-backend/internal/domains/user/handler"
	userRepo "memepmw-backend/internal/domains/user/repository"
	userService "memepmw-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is
// a singleton built once at startup.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	ArticleRepo  article.Repository
	CategoryRepo category.Repository
	CommentRepo  comment.Repository
	LayoutRepo   layout.Repository
	PageRepo     page.Repository
	ReactionRepo reaction.Repository
	SettingsRepo settings.Repository
	UserRepo     user.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	ArticleService  article.Service
	CategoryService category.Service
	CommentService  comment.Service
	LayoutService   layout.Service
	PageService     page.Service
	ReactionService reaction.Service
	SettingsService settings.Service
	UserService     user.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	ArticleHandler  *articleHandler.ArticleHandler
	CategoryHandler *categoryHandler.CategoryHandler
	CommentHandler  *commentHandler.CommentHandler
	LayoutHandler   *layoutHandler.LayoutHandler
	PageHandler     *pageHandler.PageHandler
	ReactionHandler *reactionHandler.ReactionHandler
	SettingsHandler *settingsHandler.SettingsHandler
	UserHandler     *userHandler.UserHandler
}

// NewContainer builds the whole dependency graph in order:
// config → infrastructure → repositories → services → handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure is non-critical: cached reads fall through to the
	// database and trending sidebars fall back to recency order.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE OBJECT STORAGE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage
	log.Println("✅ MinIO connected")

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// ========================================
	// STEP 5: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 6: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")
	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 7: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ArticleRepo = articleRepo.NewPostgresRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
	c.LayoutRepo = layoutRepo.NewPostgresRepository(pool)
	c.PageRepo = pageRepo.NewPostgresRepository(pool)
	c.ReactionRepo = reactionRepo.NewPostgresRepository(pool)
	c.SettingsRepo = settingsRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo, c.Storage)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo)
	c.PageService = pageService.NewPageService(c.PageRepo)
	c.ReactionService = reactionService.NewReactionService(c.ReactionRepo)
	c.SettingsService = settingsService.NewSettingsService(c.SettingsRepo, c.Cache)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)

	// The composer reads published articles through the provider
	// adapter and trending id lists the worker keeps in Redis.
	composer := layout.NewComposer(
		layoutProvider.NewArticleProvider(c.ArticleRepo),
		layoutProvider.NewTrendingSource(c.Cache),
	)
	c.LayoutService = layoutService.NewLayoutService(c.LayoutRepo, composer, c.SettingsService, c.Cache)
}

func (c *Container) initHandlers() {
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.LayoutHandler = layoutHandler.NewLayoutHandler(c.LayoutService)
	c.PageHandler = pageHandler.NewPageHandler(c.PageService)
	c.ReactionHandler = reactionHandler.NewReactionHandler(c.ReactionService)
	c.SettingsHandler = settingsHandler.NewSettingsHandler(c.SettingsService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connection closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connection closed")
		}
	}

	log.Println("✅ Container cleanup complete")
}
