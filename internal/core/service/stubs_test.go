package service

import (
	"context"
	"fmt"

	"github.com/freelancehub/time-tracking-api/internal/core/domain"
	"github.com/freelancehub/time-tracking-api/internal/core/ports"
)

// In-memory stand-ins for the mongo repositories, shared by the service
// tests in this package.

type stubUserRepo struct {
	seq   int
	users map[string]*domain.User

	// beforeAssign runs between the conditional filter evaluation and the
	// write, letting tests interleave a concurrent reassignment.
	beforeAssign func()
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) nextID() string {
	r.seq++
	return fmt.Sprintf("user-%d", r.seq)
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Permissions = append([]string(nil), u.Permissions...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	clone := cloneUser(user)
	clone.ID = r.nextID()
	r.users[clone.ID] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.FullName != nil {
		u.FullName = *update.FullName
	}
	if update.Email != nil {
		u.Email = *update.Email
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	if update.Address != nil {
		u.Address = *update.Address
	}
	if update.HourlyRate != nil {
		u.HourlyRate = *update.HourlyRate
	}
	if update.Status != nil {
		u.Status = *update.Status
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) MarkVerified(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			u.Verified = true
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.users, id)
	return u, nil
}

func (r *stubUserRepo) AssignRole(_ context.Context, userID, expectRoleName string, role *domain.Role) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if r.beforeAssign != nil {
		r.beforeAssign()
	}
	if u.RoleName != expectRoleName {
		return nil, domain.ErrConflict
	}
	u.RoleID = role.ID
	u.RoleName = role.Name
	u.Permissions = append([]string(nil), role.Grants...)
	return cloneUser(u), nil
}

type stubRoleRepo struct {
	roles map[string]*domain.Role
}

func newStubRoleRepo(seed ...domain.Role) *stubRoleRepo {
	r := &stubRoleRepo{roles: make(map[string]*domain.Role)}
	for i := range seed {
		role := seed[i]
		if role.ID == "" {
			role.ID = "role-" + role.Name
		}
		r.roles[role.Name] = &role
	}
	return r
}

func (r *stubRoleRepo) Create(_ context.Context, role *domain.Role) (*domain.Role, error) {
	if _, exists := r.roles[role.Name]; exists {
		return nil, domain.ErrRoleExists
	}
	clone := *role
	clone.ID = "role-" + role.Name
	r.roles[role.Name] = &clone
	return &clone, nil
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	role, ok := r.roles[name]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	clone := *role
	return &clone, nil
}

func (r *stubRoleRepo) List(_ context.Context) ([]domain.Role, error) {
	out := make([]domain.Role, 0, len(r.roles))
	for _, role := range r.roles {
		out = append(out, *role)
	}
	return out, nil
}

func (r *stubRoleRepo) UpdateGrants(_ context.Context, name string, grants []string) (*domain.Role, error) {
	role, ok := r.roles[name]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	role.Grants = append([]string(nil), grants...)
	clone := *role
	return &clone, nil
}

func (r *stubRoleRepo) Delete(_ context.Context, name string) (*domain.Role, error) {
	role, ok := r.roles[name]
	if !ok {
		return nil, domain.ErrRoleNotFound
	}
	delete(r.roles, name)
	return role, nil
}

type stubProjectRepo struct {
	seq      int
	projects map[string]*domain.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("project-%d", r.seq)
	r.projects[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) List(_ context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProjectRepo) AppendFreelancers(_ context.Context, projectID string, freelancerIDs []string) (*domain.Project, error) {
	p, ok := r.projects[projectID]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	p.AssignedFreelancers = append(p.AssignedFreelancers, freelancerIDs...)
	clone := *p
	return &clone, nil
}

type stubWorkingHoursRepo struct {
	seq    int
	sheets map[string]*domain.WorkingHours
}

func newStubWorkingHoursRepo() *stubWorkingHoursRepo {
	return &stubWorkingHoursRepo{sheets: make(map[string]*domain.WorkingHours)}
}

func (r *stubWorkingHoursRepo) Create(_ context.Context, wh *domain.WorkingHours) (*domain.WorkingHours, error) {
	r.seq++
	clone := *wh
	clone.ID = fmt.Sprintf("wh-%d", r.seq)
	r.sheets[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubWorkingHoursRepo) FindByID(_ context.Context, id string) (*domain.WorkingHours, error) {
	wh, ok := r.sheets[id]
	if !ok {
		return nil, domain.ErrWorkingHoursNotFound
	}
	clone := *wh
	return &clone, nil
}

func (r *stubWorkingHoursRepo) ListByStatus(_ context.Context, status domain.ApprovalStatus) ([]domain.WorkingHours, error) {
	var out []domain.WorkingHours
	for _, wh := range r.sheets {
		if wh.ApprovalStatus == status {
			out = append(out, *wh)
		}
	}
	return out, nil
}

func (r *stubWorkingHoursRepo) ListByFreelancer(_ context.Context, freelancerID string) ([]domain.WorkingHours, error) {
	var out []domain.WorkingHours
	for _, wh := range r.sheets {
		if wh.FreelancerID == freelancerID {
			out = append(out, *wh)
		}
	}
	return out, nil
}

func (r *stubWorkingHoursRepo) SetApproval(_ context.Context, id string, status domain.ApprovalStatus, approvedBy string) (*domain.WorkingHours, error) {
	wh, ok := r.sheets[id]
	if !ok {
		return nil, domain.ErrWorkingHoursNotFound
	}
	wh.ApprovalStatus = status
	wh.ApprovedBy = approvedBy
	clone := *wh
	return &clone, nil
}

func (r *stubWorkingHoursRepo) AppendComment(_ context.Context, id, commentID string) error {
	wh, ok := r.sheets[id]
	if !ok {
		return domain.ErrWorkingHoursNotFound
	}
	wh.Comments = append(wh.Comments, commentID)
	return nil
}

type stubCommunicationRepo struct {
	seq      int
	comments map[string]*domain.Comment
	replies  map[string]*domain.Reply
	rcs      map[string]*domain.ReplyComment
}

func newStubCommunicationRepo() *stubCommunicationRepo {
	return &stubCommunicationRepo{
		comments: make(map[string]*domain.Comment),
		replies:  make(map[string]*domain.Reply),
		rcs:      make(map[string]*domain.ReplyComment),
	}
}

func (r *stubCommunicationRepo) CreateComment(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	r.seq++
	clone := *c
	clone.ID = fmt.Sprintf("comment-%d", r.seq)
	r.comments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommunicationRepo) FindCommentByID(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommunicationRepo) CreateReply(_ context.Context, reply *domain.Reply) (*domain.Reply, error) {
	r.seq++
	clone := *reply
	clone.ID = fmt.Sprintf("reply-%d", r.seq)
	r.replies[clone.ID] = &clone
	if parent, ok := r.comments[reply.CommentID]; ok {
		parent.Replies = append(parent.Replies, clone.ID)
	}
	out := clone
	return &out, nil
}

func (r *stubCommunicationRepo) FindReplyByID(_ context.Context, id string) (*domain.Reply, error) {
	reply, ok := r.replies[id]
	if !ok {
		return nil, domain.ErrReplyNotFound
	}
	clone := *reply
	return &clone, nil
}

func (r *stubCommunicationRepo) CreateReplyComment(_ context.Context, rc *domain.ReplyComment) (*domain.ReplyComment, error) {
	r.seq++
	clone := *rc
	clone.ID = fmt.Sprintf("rc-%d", r.seq)
	r.rcs[clone.ID] = &clone
	if parent, ok := r.replies[rc.ReplyID]; ok {
		parent.Replies = append(parent.Replies, clone.ID)
	}
	out := clone
	return &out, nil
}

// stubEmailer records dispatched verification tokens.
type stubEmailer struct {
	sent map[string]string // email -> token
}

func newStubEmailer() *stubEmailer {
	return &stubEmailer{sent: make(map[string]string)}
}

func (e *stubEmailer) SendVerification(_ context.Context, email, _, verificationToken string) error {
	e.sent[email] = verificationToken
	return nil
}
