// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes the explanatory markdown file that accompanies a
// translated tree. Its content is fixed; it does not depend on run results.
package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Content is the text written to the report file.
const Content = `# 中文翻译说明

## 概述
本目录包含NVIDIA加速计算中心教程的中文翻译版本。

## 文件命名规则
- 所有中文翻译文件在原文件名基础上添加 ` + "`_cn`" + ` 标识
- 示例：` + "`0.0_Welcome.ipynb`" + ` → ` + "`0.0_Welcome_cn.ipynb`" + `

## 翻译内容
- 所有markdown文本内容已翻译为中文
- 代码块和URL链接保持不变
- 技术术语保持专业性和一致性

## 使用说明
1. 中文版本文件与原英文版本文件并存
2. 可以根据需要选择使用中文或英文版本
3. 中文版本保持与原文件相同的结构和功能

## 注意事项
- 翻译基于自动化工具，可能存在不准确之处
- 建议结合原英文版本对照学习
- 欢迎提交翻译改进建议
`

// Write writes Content to root/name, replacing any existing file, and
// returns the path written.
func Write(root, name string) (string, error) {
	path := filepath.Join(root, name)
	if err := os.WriteFile(path, []byte(Content), 0o644); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}
	return path, nil
}
