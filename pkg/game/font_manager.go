package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// FontManager 管理文字渲染所用的字体
// 字体数据来自 Go 字体（goregular），无需外部字体文件
type FontManager struct {
	source    *text.GoTextFaceSource
	faceCache map[float64]*text.GoTextFace
}

// NewFontManager 解析内置字体并创建字体管理器
//
// 返回：
//   - *FontManager: 字体管理器
//   - error: 字体数据解析失败时返回错误
func NewFontManager() (*FontManager, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source: %w", err)
	}

	return &FontManager{
		source:    source,
		faceCache: make(map[float64]*text.GoTextFace),
	}, nil
}

// Face 返回指定字号的字体，相同字号复用同一个实例
func (fm *FontManager) Face(size float64) *text.GoTextFace {
	if face, exists := fm.faceCache[size]; exists {
		return face
	}

	face := &text.GoTextFace{
		Source:    fm.source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	fm.faceCache[size] = face
	return face
}
