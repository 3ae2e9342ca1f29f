package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	// sha256("password") 的标准向量，算法换了这里会先红
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		HashPassword("password"))

	// 确定性：同样输入永远同样输出
	assert.Equal(t, HashPassword("pw"), HashPassword("pw"))
	assert.NotEqual(t, HashPassword("pw"), HashPassword("pw2"))

	// 固定 64 位 hex
	assert.Len(t, HashPassword(""), 64)
}
