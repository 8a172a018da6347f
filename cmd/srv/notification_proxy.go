package main

import (
	"errors"
	"net/http"

	"github.com/devsocial/backend/internal/domain/notification/event"
	"github.com/devsocial/backend/internal/domain/notification/proxy"
	"github.com/devsocial/backend/internal/middleware"
	"github.com/devsocial/backend/pkg/router"
	"github.com/devsocial/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startNotificationProxy(ct *cli.Context) error {
	if err := s.loadBase(ct); err != nil {
		return err
	}

	if err := s.loadDatabase(); err != nil {
		return err
	}

	if err := s.loadRedis(); err != nil {
		return err
	}

	if s.redisClient == nil {
		return errors.New("the proxy needs a redis address to receive notifications")
	}

	s.loadRepos()

	proxyRouter := proxy.NewRouter(s.ctx)
	proxyServer := proxy.NewProxyServer(proxyRouter, s.notificationRepo)
	go proxyRouter.Subscribe(s.ctx, s.redisClient, event.Channel)

	defaultRouter := router.New(s.ctx)
	defaultRouter.AddCloser(middleware.Logger())
	defaultRouter.Before(middleware.Authenticate())
	router.Websocket(defaultRouter, "/notification", proxyServer.ServeNotification)

	cfg := xcontext.Configs(s.ctx)
	xcontext.Logger(s.ctx).Infof("Server start in port: %s", cfg.Notification.ProxyServer.Port)

	httpSrv := &http.Server{
		Addr:    cfg.Notification.ProxyServer.Address(),
		Handler: defaultRouter.Handler(cfg.Notification.ProxyServer),
	}

	if err := httpSrv.ListenAndServe(); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stop")
	return nil
}
