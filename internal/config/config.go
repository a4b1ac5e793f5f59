package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// NoiseLayer parametriza uma camada de ruído (frequência aplicada à
// coordenada, amplitude aplicada ao resultado, número de oitavas).
type NoiseLayer struct {
	Frequency float64 `json:"frequency"`
	Amplitude float64 `json:"amplitude"`
	Octaves   int32   `json:"octaves"`
}

// NoiseConfig agrupa as camadas de ruído da geração de terreno.
// Os valores são imutáveis durante uma sessão de mundo: mudar qualquer um
// muda o mundo que a mesma seed produz.
type NoiseConfig struct {
	Continental NoiseLayer `json:"continental"` // elevação base
	Detail      NoiseLayer `json:"detail"`      // áreas elevadas / rugosidade
	Biome       NoiseLayer `json:"biome"`       // seletor de bioma
	Cave        NoiseLayer `json:"cave"`        // densidade de cavernas (3D)

	BaseHeight      int32   `json:"base_height"`      // elevação mínima do terreno
	RaisedThreshold float64 `json:"raised_threshold"` // acima disso a camada Detail eleva o terreno
	CaveThreshold   float64 `json:"cave_threshold"`   // acima disso o bloco vira caverna
}

// Config armazena as configurações do VoxelVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Mundo
	Seed           int64 `json:"seed"`
	GenRadius      int32 `json:"gen_radius"`      // raio horizontal de geração, em chunks
	VerticalRadius int32 `json:"vertical_radius"` // raio vertical de geração, em chunks
	EvictRadius    int32 `json:"evict_radius"`    // raio de descarte, em chunks
	GenWorkers     int   `json:"gen_workers"`     // 0 = um por núcleo de CPU

	// Quantos chunks sujos são re-meshados por tick. Edições do jogador
	// furam a fila e sempre saem no mesmo tick.
	RemeshBudget int `json:"remesh_budget"`

	// Câmera / controles
	FOV              float32 `json:"fov"`
	MouseSensitivity float32 `json:"mouse_sensitivity"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	WireframeMode bool `json:"wireframe_mode"`

	Noise NoiseConfig `json:"noise"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1220,
		WindowHeight: 701,
		WindowTitle:  "VoxelVision",
		Fullscreen:   false,
		TargetFPS:    60,

		Seed:           1234,
		GenRadius:      4,
		VerticalRadius: 1,
		EvictRadius:    5,
		GenWorkers:     0,

		RemeshBudget: 8,

		FOV:              70.0,
		MouseSensitivity: 0.15,

		ShowDebugInfo: false,
		WireframeMode: false,

		Noise: NoiseConfig{
			Continental: NoiseLayer{Frequency: 0.05, Amplitude: 3, Octaves: 3},
			Detail:      NoiseLayer{Frequency: 0.02, Amplitude: 15, Octaves: 3},
			Biome:       NoiseLayer{Frequency: 0.005, Amplitude: 1, Octaves: 2},
			Cave:        NoiseLayer{Frequency: 0.08, Amplitude: 1, Octaves: 3},

			BaseHeight:      4,
			RaisedThreshold: 0.3,
			CaveThreshold:   0.72,
		},
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
