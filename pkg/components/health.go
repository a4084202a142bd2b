package components

// HealthComponent 存储玩家的生命值
// 不变量：0 <= CurrentHealth <= MaxHealth
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// Apply 应用生命值修正（负数为伤害），结果限制在 [0, MaxHealth]
// 返回实际变化量
func (h *HealthComponent) Apply(modifier int) int {
	before := h.CurrentHealth
	h.CurrentHealth += modifier
	if h.CurrentHealth > h.MaxHealth {
		h.CurrentHealth = h.MaxHealth
	}
	if h.CurrentHealth < 0 {
		h.CurrentHealth = 0
	}
	return h.CurrentHealth - before
}

// IsAlive 生命值大于 0
func (h *HealthComponent) IsAlive() bool {
	return h.CurrentHealth > 0
}

// Ratio 返回当前生命值占比 [0, 1]
func (h *HealthComponent) Ratio() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	return float64(h.CurrentHealth) / float64(h.MaxHealth)
}
