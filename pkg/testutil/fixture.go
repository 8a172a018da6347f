package testutil

import (
	"context"
	"time"

	"github.com/devsocial/backend/internal/entity"
	"github.com/devsocial/backend/internal/repository"
	"github.com/devsocial/backend/pkg/crypto"
)

// Password is the plain text password of every fixture user.
const Password = "password123"

var (
	User1 = entity.User{
		Base:     entity.Base{ID: "user1"},
		Email:    "alice@example.com",
		Username: "alice",
		FullName: "Alice Nguyen",
	}

	User2 = entity.User{
		Base:     entity.Base{ID: "user2"},
		Email:    "bob@example.com",
		Username: "bob",
		FullName: "Bob Tran",
	}

	User3 = entity.User{
		Base:     entity.Base{ID: "user3"},
		Email:    "carol@example.com",
		Username: "carol",
		FullName: "Carol Le",
	}

	Post1 = entity.Post{
		Base:     entity.Base{ID: "post1"},
		AuthorID: User1.ID,
		Content:  "Shipped a new release today",
	}

	Post2 = entity.Post{
		Base:        entity.Base{ID: "post2"},
		AuthorID:    User2.ID,
		Content:     "A generics trick I keep reusing",
		CodeSnippet: "func Map[T, U any](in []T, f func(T) U) []U { return nil }",
		Language:    "go",
	}

	Project1 = entity.Project{
		Base:        entity.Base{ID: "project1"},
		CreatorID:   User1.ID,
		Title:       "Realtime code review bot",
		Description: "Reviews pull requests as they arrive",
		RepoURL:     "https://github.com/alice/review-bot",
		Status:      entity.ProjectActive,
	}
)

// CreateFixture inserts the fixture users, posts and project into the
// database attached to ctx.
func CreateFixture(ctx context.Context) {
	userRepo := repository.NewUserRepository()
	postRepo := repository.NewPostRepository()
	projectRepo := repository.NewProjectRepository()
	collaboratorRepo := repository.NewCollaboratorRepository()

	hashed, err := crypto.HashPassword(Password)
	if err != nil {
		panic(err)
	}

	for _, user := range []entity.User{User1, User2, User3} {
		user.PasswordHash = hashed
		if err := userRepo.Create(ctx, &user); err != nil {
			panic(err)
		}
	}

	for _, post := range []entity.Post{Post1, Post2} {
		if err := postRepo.Create(ctx, &post); err != nil {
			panic(err)
		}
	}

	if err := projectRepo.Create(ctx, &Project1); err != nil {
		panic(err)
	}

	err = collaboratorRepo.Create(ctx, &entity.ProjectCollaborator{
		UserID:    Project1.CreatorID,
		ProjectID: Project1.ID,
		Role:      entity.RoleOwner,
		JoinedAt:  time.Now(),
	})
	if err != nil {
		panic(err)
	}
}
