package main

import (
	"flag"
	"log"
	"runtime"

	"VoxelVision/internal/app"
	"VoxelVision/internal/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO.
	runtime.LockOSThread()

	// Flags de linha de comando
	seed := flag.Int64("seed", 0, "Seed do mundo (0 = usar a do config)")
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("--- INICIANDO VOXELVISION ---")

	// Carregar configurações
	cfg := config.Load()

	// Flags de linha de comando sobrescrevem o config salvo
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}

	// Criar e rodar a aplicação
	application := app.New(cfg)
	application.Run()
}
