package model

type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type Project struct {
	ID                string  `json:"id"`
	Creator           User    `json:"creator"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	RepoURL           string  `json:"repo_url"`
	Status            string  `json:"status"`
	TechStack         []Skill `json:"tech_stack"`
	CollaboratorCount int64   `json:"collaborator_count"`
	CreatedAt         string  `json:"created_at"`
}

type Collaborator struct {
	User     User   `json:"user"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

type CollaborationRequest struct {
	ID        string  `json:"id"`
	User      User    `json:"user"`
	Project   Project `json:"project"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type GetSkillsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetSkillsResponse struct {
	Skills []Skill `json:"skills"`
}

type CreateProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RepoURL     string   `json:"repo_url"`
	TechStack   []string `json:"tech_stack"`
}

type CreateProjectResponse struct {
	Project Project `json:"project"`
}

type GetProjectRequest struct {
	ProjectID string `json:"project_id"`
}

type GetProjectResponse Project

type GetProjectsRequest struct {
	CreatorID string `json:"creator_id"`
	Status    string `json:"status"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type GetProjectsResponse struct {
	Projects []Project `json:"projects"`
}

type GetMyProjectsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetMyProjectsResponse struct {
	Projects []Project `json:"projects"`
}

type UpdateProjectRequest struct {
	ProjectID   string   `json:"project_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RepoURL     string   `json:"repo_url"`
	Status      string   `json:"status"`
	TechStack   []string `json:"tech_stack"`
}

type UpdateProjectResponse struct {
	Project Project `json:"project"`
}

type DeleteProjectRequest struct {
	ProjectID string `json:"project_id"`
}

type DeleteProjectResponse struct{}

type GetCollaboratorsRequest struct {
	ProjectID string `json:"project_id"`
}

type GetCollaboratorsResponse struct {
	Collaborators []Collaborator `json:"collaborators"`
}

type LeaveProjectRequest struct {
	ProjectID string `json:"project_id"`
}

type LeaveProjectResponse struct{}

type RemoveCollaboratorRequest struct {
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
}

type RemoveCollaboratorResponse struct{}

type RequestCollaborationRequest struct {
	ProjectID string `json:"project_id"`
	Message   string `json:"message"`
}

type RequestCollaborationResponse struct {
	Request CollaborationRequest `json:"request"`
}

type RespondCollaborationRequest struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}

type RespondCollaborationResponse struct {
	Request CollaborationRequest `json:"request"`
}

type GetProjectRequestsRequest struct {
	ProjectID string `json:"project_id"`
	Offset    int    `json:"offset"`
	Limit     int    `json:"limit"`
}

type GetProjectRequestsResponse struct {
	Requests []CollaborationRequest `json:"requests"`
}

type GetMyCollaborationRequestsRequest struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type GetMyCollaborationRequestsResponse struct {
	Requests []CollaborationRequest `json:"requests"`
}
