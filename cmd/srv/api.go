package main

import (
	"net/http"

	"github.com/devsocial/backend/internal/middleware"
	"github.com/devsocial/backend/pkg/router"
	"github.com/devsocial/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(ct *cli.Context) error {
	if err := s.loadBase(ct); err != nil {
		return err
	}

	if err := s.loadDatabase(); err != nil {
		return err
	}

	if err := s.loadRedis(); err != nil {
		return err
	}

	s.loadRepos()
	s.loadDispatcher()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx)
	xcontext.Logger(s.ctx).Infof("Server start in port: %s", cfg.ApiServer.Port)

	s.server = &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: s.router.Handler(cfg.ApiServer.ServerConfigs),
	}

	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.AddCloser(middleware.Logger())

	// Auth API.
	router.POST(s.router, "/register", s.authDomain.Register)
	router.POST(s.router, "/login", s.authDomain.Login)

	// Public APIs. The optional token only fills is_following and is_liked.
	publicRouter := s.router.Branch()
	publicRouter.Before(middleware.OptionalAuthenticate())
	{
		router.GET(publicRouter, "/getUser", s.userDomain.GetUser)
		router.GET(publicRouter, "/getUsers", s.userDomain.GetUsers)
		router.GET(publicRouter, "/getFollowers", s.userDomain.GetFollowers)
		router.GET(publicRouter, "/getFollowing", s.userDomain.GetFollowing)

		router.GET(publicRouter, "/getPost", s.postDomain.Get)
		router.GET(publicRouter, "/getPosts", s.postDomain.GetList)
		router.GET(publicRouter, "/getComments", s.commentDomain.GetList)

		router.GET(publicRouter, "/getProject", s.projectDomain.Get)
		router.GET(publicRouter, "/getProjects", s.projectDomain.GetList)
		router.GET(publicRouter, "/getCollaborators", s.projectDomain.GetCollaborators)
		router.GET(publicRouter, "/getSkills", s.projectDomain.GetSkills)
	}

	// These following APIs need authentication.
	authRouter := s.router.Branch()
	authRouter.Before(middleware.Authenticate())
	{
		// User API.
		router.GET(authRouter, "/getMe", s.userDomain.GetMe)
		router.POST(authRouter, "/updateUser", s.userDomain.Update)
		router.POST(authRouter, "/follow", s.userDomain.Follow)
		router.POST(authRouter, "/unfollow", s.userDomain.Unfollow)

		// Post API.
		router.GET(authRouter, "/getFeed", s.postDomain.GetFeed)
		router.POST(authRouter, "/createPost", s.postDomain.Create)
		router.POST(authRouter, "/updatePost", s.postDomain.Update)
		router.POST(authRouter, "/deletePost", s.postDomain.Delete)
		router.POST(authRouter, "/likePost", s.postDomain.Like)
		router.POST(authRouter, "/unlikePost", s.postDomain.Unlike)

		// Comment API.
		router.POST(authRouter, "/createComment", s.commentDomain.Create)
		router.POST(authRouter, "/updateComment", s.commentDomain.Update)
		router.POST(authRouter, "/deleteComment", s.commentDomain.Delete)
		router.POST(authRouter, "/likeComment", s.commentDomain.Like)
		router.POST(authRouter, "/unlikeComment", s.commentDomain.Unlike)

		// Project API.
		router.GET(authRouter, "/getMyProjects", s.projectDomain.GetMyProjects)
		router.POST(authRouter, "/createProject", s.projectDomain.Create)
		router.POST(authRouter, "/updateProject", s.projectDomain.Update)
		router.POST(authRouter, "/deleteProject", s.projectDomain.Delete)
		router.POST(authRouter, "/leaveProject", s.projectDomain.Leave)
		router.POST(authRouter, "/removeCollaborator", s.projectDomain.RemoveCollaborator)

		// Collaboration API.
		router.GET(authRouter, "/getCollaborationRequests", s.collaborationDomain.GetProjectRequests)
		router.GET(authRouter, "/getMyCollaborationRequests", s.collaborationDomain.GetMyRequests)
		router.POST(authRouter, "/requestCollaboration", s.collaborationDomain.Request)
		router.POST(authRouter, "/respondCollaboration", s.collaborationDomain.Respond)

		// Notification API.
		router.GET(authRouter, "/getNotifications", s.notificationDomain.GetList)
		router.GET(authRouter, "/getUnreadNotificationCount", s.notificationDomain.GetUnreadCount)
		router.GET(authRouter, "/getNotificationSettings", s.notificationDomain.GetSettings)
		router.POST(authRouter, "/markNotificationAsRead", s.notificationDomain.MarkRead)
		router.POST(authRouter, "/markAllNotificationsAsRead", s.notificationDomain.MarkAllRead)
		router.POST(authRouter, "/deleteNotification", s.notificationDomain.Delete)
		router.POST(authRouter, "/updateNotificationSettings", s.notificationDomain.UpdateSettings)

		// Notification stream.
		router.Websocket(authRouter, "/notification", s.proxyServer.ServeNotification)
	}
}
