// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action 抽象的输入动作
// 系统只关心动作，不直接读取键盘，便于测试时注入脚本化输入
type Action int

const (
	// ActionUp 向上移动（持续按住）
	ActionUp Action = iota
	// ActionDown 向下移动（持续按住）
	ActionDown
	// ActionLeft 向左移动（持续按住）
	ActionLeft
	// ActionRight 向右移动（持续按住）
	ActionRight
	// ActionFire 开火（离散事件）
	ActionFire
	// ActionConfirm 确认：开始回合 / 返回菜单（离散事件）
	ActionConfirm
	// ActionToggleFullscreen 切换全屏
	ActionToggleFullscreen
	// ActionToggleDebug 切换调试信息
	ActionToggleDebug
)

// InputSource 每帧的输入采样
type InputSource interface {
	// IsPressed 动作对应的按键当前是否处于按下状态
	IsPressed(action Action) bool
	// IsJustPressed 动作对应的按键是否在本帧刚刚按下
	IsJustPressed(action Action) bool
}

// DefaultKeyBindings 默认键位：WASD 与方向键移动，空格开火，回车确认
var DefaultKeyBindings = map[Action][]ebiten.Key{
	ActionUp:               {ebiten.KeyW, ebiten.KeyArrowUp},
	ActionDown:             {ebiten.KeyS, ebiten.KeyArrowDown},
	ActionLeft:             {ebiten.KeyA, ebiten.KeyArrowLeft},
	ActionRight:            {ebiten.KeyD, ebiten.KeyArrowRight},
	ActionFire:             {ebiten.KeySpace},
	ActionConfirm:          {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	ActionToggleFullscreen: {ebiten.KeyF11},
	ActionToggleDebug:      {ebiten.KeyF3},
}

// KeyboardInput 基于 Ebitengine 键盘状态的 InputSource 实现
type KeyboardInput struct {
	bindings map[Action][]ebiten.Key
}

// NewKeyboardInput 创建键盘输入源
// bindings 为 nil 时使用 DefaultKeyBindings
func NewKeyboardInput(bindings map[Action][]ebiten.Key) *KeyboardInput {
	if bindings == nil {
		bindings = DefaultKeyBindings
	}
	return &KeyboardInput{bindings: bindings}
}

// Keys 返回动作绑定的按键列表
func (k *KeyboardInput) Keys(action Action) []ebiten.Key {
	return k.bindings[action]
}

// IsPressed 任意绑定按键按下即视为动作按下
func (k *KeyboardInput) IsPressed(action Action) bool {
	for _, key := range k.bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// IsJustPressed 任意绑定按键在本帧刚按下即视为动作触发
func (k *KeyboardInput) IsJustPressed(action Action) bool {
	for _, key := range k.bindings[action] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}

// AxisIntent 将方向动作转换为两个轴向的意图（-1/0/+1）
// 相反方向同时按下时互相抵消
func AxisIntent(in InputSource) (x, y float64) {
	if in.IsPressed(ActionLeft) {
		x--
	}
	if in.IsPressed(ActionRight) {
		x++
	}
	if in.IsPressed(ActionUp) {
		y--
	}
	if in.IsPressed(ActionDown) {
		y++
	}
	return x, y
}
