package blog

import "context"

type Role string

const (
	RolePublic Role = "public_user"
	RoleAuthor Role = "author"
	RoleEditor Role = "editor"
	RoleAdmin  Role = "admin"
)

var roleLevels = map[Role]int{
	RolePublic: 1,
	RoleAuthor: 2,
	RoleEditor: 3,
	RoleAdmin:  4,
}

func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles rank below everything.
func (r Role) AtLeast(min Role) bool {
	return roleLevels[r] > 0 && roleLevels[r] >= roleLevels[min]
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID int
	Role   Role
	Token  string
}

// Can reports whether the principal holds at least the given role. A nil principal is anonymous.
func (p *Principal) Can(min Role) bool {
	return p != nil && p.Role.AtLeast(min)
}

// Owns reports whether the principal is the given user.
func (p *Principal) Owns(userID int) bool {
	return p != nil && p.UserID == userID
}

type principalKey struct{}

func NewContext(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}
