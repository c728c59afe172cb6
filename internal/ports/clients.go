package ports

import (
	"context"

	"github.com/jsamuelsen11/taskboard/internal/domain/project"
	"github.com/jsamuelsen11/taskboard/internal/domain/task"
	"github.com/jsamuelsen11/taskboard/internal/domain/user"
)

// AuthClient defines the client port for backend authentication.
type AuthClient interface {
	// Login exchanges credentials for an authenticated session.
	// Returns domain.ErrForbidden when the credentials are rejected.
	Login(ctx context.Context, username, password string) (user.Auth, error)

	// Register creates a user account and returns its session.
	// Returns domain.ErrConflict when the email is already taken.
	Register(ctx context.Context, u user.User, password string) (user.Auth, error)

	// Logout ends the session identified by token.
	Logout(ctx context.Context, token string) error
}

// ProjectClient defines the client port for backend project operations.
// Every call that returns a project returns the backend's confirmed entity.
type ProjectClient interface {
	// List returns the projects userID is a member of.
	List(ctx context.Context, userID string) ([]project.Project, error)

	// Add creates a project and returns it with its server-assigned ID.
	Add(ctx context.Context, p project.Project) (project.Project, error)

	// Update replaces a project's editable fields.
	// Returns domain.ErrNotFound if the project does not exist.
	Update(ctx context.Context, p project.Project) (project.Project, error)

	// Delete removes a project. The confirmed entity is the one passed in.
	Delete(ctx context.Context, p project.Project) (project.Project, error)

	// Invite adds the ids of users to the project's members. Existing
	// members are kept and duplicates are dropped.
	Invite(ctx context.Context, projectID string, users []user.User) (project.Project, error)

	// UpdateTaskLists replaces the project's task list ids with p.TaskLists.
	UpdateTaskLists(ctx context.Context, p project.Project) (project.Project, error)

	// UsersByProject returns the users whose ProjectIDs contain projectID.
	UsersByProject(ctx context.Context, projectID string) ([]user.User, error)
}

// TaskListClient defines the client port for backend task list operations.
type TaskListClient interface {
	// List returns the task lists of a project.
	List(ctx context.Context, projectID string) ([]task.TaskList, error)

	// Add creates a task list.
	Add(ctx context.Context, l task.TaskList) (task.TaskList, error)

	// Update replaces a task list's editable fields.
	Update(ctx context.Context, l task.TaskList) (task.TaskList, error)

	// Delete removes a task list. The confirmed entity is the one passed in.
	Delete(ctx context.Context, l task.TaskList) (task.TaskList, error)

	// Swap exchanges the display order of two task lists and returns both
	// with their new order.
	Swap(ctx context.Context, src, target task.TaskList) ([]task.TaskList, error)
}

// TaskClient defines the client port for backend task operations.
type TaskClient interface {
	// ListByLists returns the tasks of every given list, concatenated in
	// list order.
	ListByLists(ctx context.Context, lists []task.TaskList) ([]task.Task, error)

	// Add creates a task.
	Add(ctx context.Context, t task.Task) (task.Task, error)

	// Update replaces a task's editable fields.
	Update(ctx context.Context, t task.Task) (task.Task, error)

	// Delete removes a task. The confirmed entity is the one passed in.
	Delete(ctx context.Context, t task.Task) (task.Task, error)

	// Complete flips the task's completed flag.
	Complete(ctx context.Context, t task.Task) (task.Task, error)

	// Move places a task in another list.
	Move(ctx context.Context, taskID, taskListID string) (task.Task, error)

	// MoveAll moves every task of srcListID to targetListID and returns the
	// moved tasks.
	MoveAll(ctx context.Context, srcListID, targetListID string) ([]task.Task, error)
}

// UserClient defines the client port for backend user operations.
type UserClient interface {
	// Search returns users whose email matches filter.
	Search(ctx context.Context, filter string) ([]user.User, error)

	// AddProjectRef adds projectID to the user's ProjectIDs.
	AddProjectRef(ctx context.Context, u user.User, projectID string) (user.User, error)

	// RemoveProjectRef removes projectID from the user's ProjectIDs.
	RemoveProjectRef(ctx context.Context, u user.User, projectID string) (user.User, error)

	// BatchUpdateProjectRef reconciles project membership: every member of
	// p gets p.ID in ProjectIDs. Returns the updated users.
	BatchUpdateProjectRef(ctx context.Context, p project.Project) ([]user.User, error)
}
