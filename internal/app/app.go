package app

import (
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"VoxelVision/internal/camera"
	"VoxelVision/internal/config"
	"VoxelVision/internal/physics"
	"VoxelVision/internal/player"
	"VoxelVision/internal/render"
	"VoxelVision/internal/world"
	"VoxelVision/internal/worldgen"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StatePlaying AppState = iota // Mundo rodando, mouse capturado
	StatePaused                  // Pausado, mouse livre
)

// evictGrace é quanto tempo um chunk populado sobrevive fora do raio de
// descarte antes de ser liberado, para não descartar e regenerar em
// sequência quando o jogador oscila na borda do raio.
const evictGrace = 10 * time.Second

// App é a aplicação principal do VoxelVision.
type App struct {
	Config *config.Config
	State  AppState

	Cam    *camera.Camera
	Player *player.Player

	store    *world.ChunkStore
	pool     *worldgen.Pool
	renderer *render.Renderer

	// Bloco sob a mira neste frame, para o contorno de seleção e o HUD.
	target    physics.RayHit
	hasTarget bool

	frameCount int
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		State:  StatePlaying,
	}
}

// Run inicia a janela e o loop principal. Deve rodar na thread principal
// do SO (o chamador faz runtime.LockOSThread).
func (a *App) Run() {
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0)

	log.Printf("[App] Janela inicializada: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)
	log.Printf("[App] Seed do mundo: %d", a.Config.Seed)

	gen := worldgen.NewGenerator(a.Config.Seed, a.Config.Noise)
	a.pool = worldgen.NewPool(a.Config.GenWorkers, gen)
	a.store = world.NewChunkStore(a.pool, world.StoreParams{
		GenRadius:      a.Config.GenRadius,
		VerticalRadius: a.Config.VerticalRadius,
		EvictRadius:    a.Config.EvictRadius,
		EvictGrace:     evictGrace,
	})

	a.renderer = render.NewRenderer()
	a.renderer.SetWireframe(a.Config.WireframeMode)

	a.Cam = camera.New(a.Config.FOV)
	a.Player = player.New(rl.Vector3{X: 0, Y: 44, Z: 0}, a.Cam)

	rl.DisableCursor()

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update avança um frame de simulação.
func (a *App) update() {
	a.frameCount++

	switch a.State {
	case StatePlaying:
		dt := rl.GetFrameTime()
		intents := a.readInput()
		a.updateWorld(dt, intents)
	case StatePaused:
		a.readPausedInput()
	}
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.pool.Stop()
	a.renderer.Unload()

	if err := a.Config.Save(); err != nil {
		log.Printf("[App] Erro ao salvar configurações: %v", err)
	}
}
