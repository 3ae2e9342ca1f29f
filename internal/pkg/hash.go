package pkg

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword 明文 -> sha256 hex。历史前端约定如此，不加盐不迭代，
// 换 bcrypt 会让存量账号全部失效，迁移前保持原样
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
