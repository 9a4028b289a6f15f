package game

// FrameClock 固定步长的帧时钟
// 由 App 持有并在每个 tick 推进，取代全局的时钟状态
type FrameClock struct {
	tps   int
	frame uint64
}

// NewFrameClock 创建帧时钟
// tps <= 0 时使用 60
func NewFrameClock(tps int) *FrameClock {
	if tps <= 0 {
		tps = 60
	}
	return &FrameClock{tps: tps}
}

// Advance 推进一帧
func (c *FrameClock) Advance() {
	c.frame++
}

// Frame 返回已推进的帧数
func (c *FrameClock) Frame() uint64 {
	return c.frame
}

// TPS 返回每秒逻辑帧数
func (c *FrameClock) TPS() int {
	return c.tps
}

// DeltaTime 返回每帧的固定时长（秒）
func (c *FrameClock) DeltaTime() float64 {
	return 1.0 / float64(c.tps)
}
