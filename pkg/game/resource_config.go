package game

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ResourceConfig 对应 assets/config/resources.yaml 的顶层结构
//
// 结构示例:
//
//	version: "1.0"
//	base_path: assets
//	sounds:
//	  - id: SOUND_HIT
//	    path: audio/hitsound.wav
type ResourceConfig struct {
	Version  string          `yaml:"version"`   // 配置文件版本
	BasePath string          `yaml:"base_path"` // 资源根路径（如 "assets"）
	Sounds   []SoundResource `yaml:"sounds"`    // 音效资源列表
}

// SoundResource 单个音效资源定义
type SoundResource struct {
	ID   string `yaml:"id"`   // 资源ID（唯一标识）
	Path string `yaml:"path"` // 相对 base_path 的文件路径
}

// ParseResourceConfig 解析资源配置数据
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}
	return &cfg, nil
}

// buildFullPath 拼接资源的完整路径
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	if len(relativePath) > 0 && relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
