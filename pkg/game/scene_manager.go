package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/decker502/royale/pkg/logging"
)

// SceneFactory 场景工厂函数类型
// 根据回合阶段创建对应的场景，避免 game 包依赖 scenes 包
type SceneFactory func(phase Phase) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentPhase Phase
	hasPhase     bool         // currentScene 是否由 SyncPhase 创建
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
	logger       zerolog.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or SyncPhase to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		logger: logging.For("SceneManager"),
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The new scene's Update and Draw methods will be called on subsequent game loop iterations.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.hasPhase = false
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// SyncPhase 确保当前场景与回合阶段一致
// 阶段未变化时不做任何事；变化时通过工厂创建新场景
//
// 返回：
//   - bool: 是否发生了场景切换
func (sm *SceneManager) SyncPhase(phase Phase) bool {
	if sm.hasPhase && sm.currentPhase == phase {
		return false
	}

	if sm.sceneFactory == nil {
		sm.logger.Error().Msg("SceneFactory 未设置")
		return false
	}

	newScene := sm.sceneFactory(phase)
	if newScene == nil {
		sm.logger.Error().Stringer("phase", phase).Msg("无法创建场景")
		return false
	}

	sm.currentScene = newScene
	sm.currentPhase = phase
	sm.hasPhase = true
	sm.logger.Debug().Stringer("phase", phase).Msg("切换场景")
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
