package domain

// Identity 从 JWT 解出的请求者身份
type Identity struct {
	ID    uint
	Email string
	Role  string
}

// CanMutate 修改/删除权限：本人或管理员
func CanMutate(actor Identity, ownerID uint) bool {
	return actor.ID == ownerID || actor.Role == RoleAdmin
}
