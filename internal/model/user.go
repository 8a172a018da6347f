package model

type User struct {
	ID                   string `json:"id"`
	Email                string `json:"email,omitempty"`
	Username             string `json:"username"`
	FullName             string `json:"full_name"`
	Bio                  string `json:"bio"`
	GithubProfile        string `json:"github_profile"`
	StackoverflowProfile string `json:"stackoverflow_profile"`
	FollowerCount        int64  `json:"follower_count"`
	FollowingCount       int64  `json:"following_count"`
	IsFollowing          bool   `json:"is_following"`
	CreatedAt            string `json:"created_at"`
}

type GetMeRequest struct{}

type GetMeResponse User

type GetUserRequest struct {
	UserID string `json:"user_id"`
}

type GetUserResponse User

type GetUsersRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetUsersResponse struct {
	Users []User `json:"users"`
}

type UpdateUserRequest struct {
	FullName             string `json:"full_name"`
	Bio                  string `json:"bio"`
	GithubProfile        string `json:"github_profile"`
	StackoverflowProfile string `json:"stackoverflow_profile"`
	CurrentPassword      string `json:"current_password"`
	NewPassword          string `json:"new_password"`
	ConfirmNewPassword   string `json:"confirm_new_password"`
}

type UpdateUserResponse struct {
	User User `json:"user"`
}

type FollowUserRequest struct {
	UserID string `json:"user_id"`
}

type FollowUserResponse struct{}

type UnfollowUserRequest struct {
	UserID string `json:"user_id"`
}

type UnfollowUserResponse struct{}

type GetFollowersRequest struct {
	UserID string `json:"user_id"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetFollowersResponse struct {
	Followers []User `json:"followers"`
}

type GetFollowingRequest struct {
	UserID string `json:"user_id"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetFollowingResponse struct {
	Following []User `json:"following"`
}
