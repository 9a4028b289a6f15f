// embed.go - 资源嵌入声明
// 必须放在项目根目录（与 data/ 同级）
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件
package main

import _ "embed"

// 默认数值配置，--tuningPath 未指定时使用
//
//go:embed data/tuning.yaml
var defaultTuningYAML []byte
