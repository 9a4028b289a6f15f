package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CenteredTextX 返回文本在给定宽度内水平居中时的左侧 X 坐标
// 参数:
//   - textStr: 要绘制的文本
//   - font: 字体
//   - areaWidth: 居中区域的宽度（像素）
func CenteredTextX(textStr string, font *text.GoTextFace, areaWidth float64) float64 {
	return areaWidth/2 - MeasureTextWidth(textStr, font)/2
}

// DrawText 以左上角为锚点绘制单行文本
func DrawText(screen *ebiten.Image, textStr string, font *text.GoTextFace, x, y float64, clr color.Color) {
	if font == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, textStr, font, op)
}

// MeasureTextWidth 测量文本宽度
func MeasureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	// 使用 Measure 方法测量文本尺寸
	width, _ := text.Measure(textStr, font, 0)
	return width
}
