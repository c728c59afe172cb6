// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/taskboard/internal/app"
	"github.com/jsamuelsen11/taskboard/internal/app/auth"
	"github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/domain/user"
	"github.com/jsamuelsen11/taskboard/internal/platform/store"
)

// DispatchResponse acknowledges a queued intent.
type DispatchResponse struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

// ActionTypesResponse lists the intents a client may dispatch.
type ActionTypesResponse struct {
	Types []string `json:"types"`
	Count int      `json:"count"`
}

// ToActionTypesResponse converts registered action types to a response DTO.
func ToActionTypesResponse(types []store.ActionType) ActionTypesResponse {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}
	return ActionTypesResponse{Types: out, Count: len(out)}
}

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CoverImg    string   `json:"cover_img,omitempty"`
	Members     []string `json:"members"`
	TaskLists   []string `json:"task_lists"`
}

// ToProjectResponse converts a domain Project entity to an HTTP response DTO.
func ToProjectResponse(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CoverImg:    p.CoverImg,
		Members:     nonNil(p.Members),
		TaskLists:   nonNil(p.TaskLists),
	}
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectListResponse converts projects to an HTTP list response DTO.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := mapSlice(projects, ToProjectResponse)
	return ProjectListResponse{Projects: items, Count: len(items)}
}

// TaskListResponse represents a single task list in HTTP responses.
type TaskListResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Order     int    `json:"order"`
	ProjectID string `json:"project_id"`
}

// ToTaskListResponse converts a domain TaskList to an HTTP response DTO.
func ToTaskListResponse(l task.TaskList) TaskListResponse {
	return TaskListResponse{ID: l.ID, Name: l.Name, Order: l.Order, ProjectID: l.ProjectID}
}

// TaskListListResponse represents task lists in display order.
type TaskListListResponse struct {
	TaskLists []TaskListResponse `json:"task_lists"`
	Count     int                `json:"count"`
}

// ToTaskListListResponse converts task lists to an HTTP list response DTO.
func ToTaskListListResponse(lists []task.TaskList) TaskListListResponse {
	items := mapSlice(lists, ToTaskListResponse)
	return TaskListListResponse{TaskLists: items, Count: len(items)}
}

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID             string   `json:"id"`
	TaskListID     string   `json:"task_list_id"`
	Description    string   `json:"description"`
	Completed      bool     `json:"completed"`
	Priority       string   `json:"priority"`
	Order          int      `json:"order"`
	OwnerID        string   `json:"owner_id,omitempty"`
	ParticipantIDs []string `json:"participant_ids"`
	Remark         string   `json:"remark,omitempty"`
	DueDate        string   `json:"due_date,omitempty"`
	CreatedAt      string   `json:"created_at,omitempty"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t task.Task) TaskResponse {
	resp := TaskResponse{
		ID:             t.ID,
		TaskListID:     t.TaskListID,
		Description:    t.Desc,
		Completed:      t.Completed,
		Priority:       t.Priority.String(),
		Order:          t.Order,
		OwnerID:        t.OwnerID,
		ParticipantIDs: nonNil(t.ParticipantIDs),
		Remark:         t.Remark,
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(time.RFC3339)
	}
	if !t.CreatedAt.IsZero() {
		resp.CreatedAt = t.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// TasksByListResponse groups tasks by task list id.
type TasksByListResponse struct {
	Lists map[string][]TaskResponse `json:"lists"`
	Count int                       `json:"count"`
}

// ToTasksByListResponse converts grouped tasks to an HTTP response DTO.
// Count is the number of tasks over all lists.
func ToTasksByListResponse(grouped map[string][]task.Task) TasksByListResponse {
	resp := TasksByListResponse{Lists: make(map[string][]TaskResponse, len(grouped))}
	for listID, tasks := range grouped {
		resp.Lists[listID] = mapSlice(tasks, ToTaskResponse)
		resp.Count += len(tasks)
	}
	return resp
}

// UserResponse represents a user in HTTP responses.
type UserResponse struct {
	ID         string   `json:"id"`
	Email      string   `json:"email"`
	Name       string   `json:"name"`
	Avatar     string   `json:"avatar,omitempty"`
	ProjectIDs []string `json:"project_ids"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Avatar: u.Avatar, ProjectIDs: nonNil(u.ProjectIDs)}
}

// UserListResponse represents a list of users in HTTP responses.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}

// ToUserListResponse converts users to an HTTP list response DTO.
func ToUserListResponse(users []user.User) UserListResponse {
	items := mapSlice(users, ToUserResponse)
	return UserListResponse{Users: items, Count: len(items)}
}

// AuthResponse describes the session without exposing its token.
type AuthResponse struct {
	Authenticated bool          `json:"authenticated"`
	Loading       bool          `json:"loading"`
	User          *UserResponse `json:"user,omitempty"`
}

// CollectionResponse is a normalized collection: ids in order plus the
// entities keyed by id.
type CollectionResponse[T any] struct {
	IDs      []string     `json:"ids"`
	Entities map[string]T `json:"entities"`
	Loading  bool         `json:"loading"`
}

func toCollection[E store.Identifiable, R any](e store.Entities[E], loading bool, conv func(E) R) CollectionResponse[R] {
	resp := CollectionResponse[R]{
		IDs:      nonNil(e.IDs()),
		Entities: make(map[string]R, e.Len()),
		Loading:  loading,
	}
	for _, item := range e.All() {
		resp.Entities[item.EntityID()] = conv(item)
	}
	return resp
}

// ProjectsStateResponse is the project store with its selection.
type ProjectsStateResponse struct {
	CollectionResponse[ProjectResponse]
	SelectedID string `json:"selected_id,omitempty"`
}

// RouterResponse is the router store.
type RouterResponse struct {
	Path    string   `json:"path"`
	History []string `json:"history"`
}

// StateResponse is the full client state as served by GET /api/v1/state.
type StateResponse struct {
	Auth      AuthResponse                         `json:"auth"`
	Projects  ProjectsStateResponse                `json:"projects"`
	TaskLists CollectionResponse[TaskListResponse] `json:"task_lists"`
	Tasks     CollectionResponse[TaskResponse]     `json:"tasks"`
	Users     CollectionResponse[UserResponse]     `json:"users"`
	Router    RouterResponse                       `json:"router"`
}

// ToAuthResponse converts the auth store to an HTTP response DTO.
func ToAuthResponse(authenticated, loading bool, u user.User) AuthResponse {
	resp := AuthResponse{Authenticated: authenticated, Loading: loading}
	if authenticated {
		ur := ToUserResponse(u)
		resp.User = &ur
	}
	return resp
}

// ToStateResponse converts a state snapshot to an HTTP response DTO.
func ToStateResponse(s app.State) StateResponse {
	return StateResponse{
		Auth: ToAuthResponse(auth.IsAuthenticated(s.Auth), s.Auth.Loading, auth.CurrentUser(s.Auth)),
		Projects: ProjectsStateResponse{
			CollectionResponse: toCollection(s.Projects.Entities, s.Projects.Loading, ToProjectResponse),
			SelectedID:         s.Projects.SelectedID,
		},
		TaskLists: toCollection(s.TaskLists.Entities, s.TaskLists.Loading, ToTaskListResponse),
		Tasks:     toCollection(s.Tasks.Entities, s.Tasks.Loading, ToTaskResponse),
		Users:     toCollection(s.Users.Entities, s.Users.Loading, ToUserResponse),
		Router:    RouterResponse{Path: s.Router.Path, History: nonNil(s.Router.History)},
	}
}

func mapSlice[T, R any](in []T, conv func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = conv(v)
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
