package main

import (
	"context"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/devsocial/backend/config"
	"github.com/devsocial/backend/internal/domain"
	"github.com/devsocial/backend/internal/domain/notification"
	"github.com/devsocial/backend/internal/domain/notification/event"
	"github.com/devsocial/backend/internal/domain/notification/proxy"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/migration"
	"github.com/devsocial/backend/pkg/authenticator"
	"github.com/devsocial/backend/pkg/logger"
	xredis "github.com/devsocial/backend/pkg/redis"
	"github.com/devsocial/backend/pkg/router"
	"github.com/devsocial/backend/pkg/xcontext"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context

	userRepo                 repository.UserRepository
	followRepo               repository.FollowRepository
	postRepo                 repository.PostRepository
	commentRepo              repository.CommentRepository
	postLikeRepo             repository.PostLikeRepository
	commentLikeRepo          repository.CommentLikeRepository
	skillRepo                repository.SkillRepository
	projectRepo              repository.ProjectRepository
	collaboratorRepo         repository.CollaboratorRepository
	collaborationRequestRepo repository.CollaborationRequestRepository
	notificationRepo         repository.NotificationRepository
	notificationSettingRepo  repository.NotificationSettingRepository

	authDomain          domain.AuthDomain
	userDomain          domain.UserDomain
	postDomain          domain.PostDomain
	commentDomain       domain.CommentDomain
	projectDomain       domain.ProjectDomain
	collaborationDomain domain.CollaborationDomain
	notificationDomain  domain.NotificationDomain

	proxyRouter *proxy.Router
	proxyServer *proxy.ProxyServer
	dispatcher  notification.Dispatcher
	redisClient *redis.Client

	router *router.Router
	server *http.Server
}

func (s *srv) loadBase(ct *cli.Context) error {
	cfg, err := config.Load(ct.String("config"))
	if err != nil {
		return err
	}

	node, err := snowflake.NewNode(0)
	if err != nil {
		return err
	}

	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(cfg.LogLevel))
	s.ctx = xcontext.WithTokenEngine(s.ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	s.ctx = xcontext.WithSnowFlake(s.ctx, node)
	return nil
}

func (s *srv) loadDatabase() error {
	cfg := xcontext.Configs(s.ctx)
	db, err := gorm.Open(mysql.Open(cfg.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
	return migration.Migrate(s.ctx)
}

func (s *srv) loadRedis() error {
	addr := xcontext.Configs(s.ctx).Redis.Addr
	if addr == "" {
		return nil
	}

	client, err := xredis.NewClient(s.ctx, addr)
	if err != nil {
		return err
	}

	s.redisClient = client
	return nil
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.followRepo = repository.NewFollowRepository()
	s.postRepo = repository.NewPostRepository()
	s.commentRepo = repository.NewCommentRepository()
	s.postLikeRepo = repository.NewPostLikeRepository()
	s.commentLikeRepo = repository.NewCommentLikeRepository()
	s.skillRepo = repository.NewSkillRepository()
	s.projectRepo = repository.NewProjectRepository()
	s.collaboratorRepo = repository.NewCollaboratorRepository()
	s.collaborationRequestRepo = repository.NewCollaborationRequestRepository()
	s.notificationRepo = repository.NewNotificationRepository()
	s.notificationSettingRepo = repository.NewNotificationSettingRepository()
}

// loadDispatcher wires the push path. Notifications always reach hubs in
// this process; with redis configured they also reach proxy processes.
func (s *srv) loadDispatcher() {
	s.proxyRouter = proxy.NewRouter(s.ctx)
	s.proxyServer = proxy.NewProxyServer(s.proxyRouter, s.notificationRepo)

	dispatchers := []notification.Dispatcher{notification.NewLocalDispatcher(s.proxyRouter)}
	if s.redisClient != nil {
		dispatchers = append(dispatchers, notification.NewRedisDispatcher(s.redisClient, event.Channel))
	}

	s.dispatcher = notification.NewMultiDispatcher(dispatchers...)
}

func (s *srv) loadDomains() {
	notifier := domain.NewNotifier(s.notificationRepo, s.notificationSettingRepo, s.dispatcher)

	s.authDomain = domain.NewAuthDomain(s.userRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.followRepo, notifier)
	s.postDomain = domain.NewPostDomain(
		s.postRepo, s.commentRepo, s.postLikeRepo, s.followRepo, s.userRepo, notifier)
	s.commentDomain = domain.NewCommentDomain(
		s.commentRepo, s.postRepo, s.commentLikeRepo, s.userRepo, notifier)
	s.projectDomain = domain.NewProjectDomain(
		s.projectRepo, s.skillRepo, s.collaboratorRepo, s.userRepo)
	s.collaborationDomain = domain.NewCollaborationDomain(
		s.collaborationRequestRepo, s.projectRepo, s.collaboratorRepo, s.userRepo, notifier)
	s.notificationDomain = domain.NewNotificationDomain(
		s.notificationRepo, s.notificationSettingRepo)
}
