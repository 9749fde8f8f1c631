package game

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/gonewx/keycube/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ResourceManager 负责统一管理游戏资源
// 提供音效的加载与缓存，保证每个资源只加载一次。
//
// 资源通过 embedded 包从嵌入文件系统读取，并可通过
// resources.yaml 中定义的资源ID间接引用，调用方无需关心路径。
//
// 注意：内部缓存使用普通 map，不是并发安全的。
// 当前游戏为单线程帧循环，无需加锁。
type ResourceManager struct {
	audioCache   map[string]*audio.Player // 已加载的音效播放器: 路径 -> Player
	audioContext *audio.Context           // 全局音频上下文，用于解码和播放

	// YAML 资源配置
	config      *ResourceConfig   // 解析后的配置
	resourceMap map[string]string // 资源ID -> 完整路径
}

// NewResourceManager 创建并初始化一个新的 ResourceManager 实例
// audioContext 应在游戏启动时以 48000 Hz 采样率创建一次
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
		resourceMap:  make(map[string]string),
	}
}

// LoadResourceConfig 从嵌入文件系统加载资源配置
// 并建立 资源ID -> 完整路径 的查找表
func (rm *ResourceManager) LoadResourceConfig(path string) error {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", path, err)
	}

	cfg, err := ParseResourceConfig(data)
	if err != nil {
		return err
	}

	rm.config = cfg
	for _, sound := range cfg.Sounds {
		rm.resourceMap[sound.ID] = buildFullPath(cfg.BasePath, sound.Path)
	}

	log.Printf("[ResourceManager] Loaded resource config: %d sounds", len(cfg.Sounds))
	return nil
}

// GetSoundPath 根据资源ID查找音效文件路径
func (rm *ResourceManager) GetSoundPath(soundID string) (string, bool) {
	path, exists := rm.resourceMap[soundID]
	return path, exists
}

// LoadSoundEffect 加载一个单次播放的音效并缓存
// 根据扩展名选择解码器，支持 WAV (.wav)、MP3 (.mp3) 和 OGG Vorbis (.ogg)
//
// 返回的播放器已就绪但未开始播放。
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	// 检查缓存
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context is not initialized")
	}

	audioData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}

	reader := bytes.NewReader(audioData)
	ext := strings.ToLower(filepath.Ext(path))

	// 按格式解码（不做循环包装，音效只播放一次）
	var stream io.ReadSeeker

	switch ext {
	case ".wav":
		decodedStream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".mp3":
		decodedStream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decodedStream
	case ".ogg":
		decodedStream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decodedStream
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// GetAudioPlayer 从缓存获取已加载的音效播放器
// 未加载过则返回 nil
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// PreloadSounds 预加载配置中声明的所有音效
// 单个音效加载失败只记录日志，不中断启动（缺失资源按跳过处理）
func (rm *ResourceManager) PreloadSounds() {
	if rm.config == nil {
		return
	}
	for _, sound := range rm.config.Sounds {
		path := rm.resourceMap[sound.ID]
		if _, err := rm.LoadSoundEffect(path); err != nil {
			log.Printf("[ResourceManager] Warning: Failed to preload sound %s: %v", sound.ID, err)
		}
	}
}
