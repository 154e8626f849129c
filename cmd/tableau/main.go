package main

import (
	"context"
	"flag"
	stdmath "math"
	"os"
	"time"

	"go.uber.org/zap"

	"tableau/core"
	"tableau/internal/opengl"
	"tableau/logging"
	"tableau/math"
	"tableau/pipeline"
	"tableau/registry"
	"tableau/scene"
	"tableau/tableau"
)

// meshDrawer uploads meshes to the GPU on demand and issues draw calls.
type meshDrawer struct {
	buffers map[*scene.Mesh]*opengl.MeshBuffers
}

func newMeshDrawer() *meshDrawer {
	return &meshDrawer{buffers: make(map[*scene.Mesh]*opengl.MeshBuffers)}
}

func (d *meshDrawer) DrawMesh(m *scene.Mesh) {
	b, ok := d.buffers[m]
	if !ok {
		b = opengl.UploadMesh(m)
		d.buffers[m] = b
	}
	if b != nil {
		b.Draw()
	}
}

func (d *meshDrawer) Release() {
	for _, b := range d.buffers {
		if b != nil {
			b.Release()
		}
	}
	d.buffers = nil
}

func main() {
	assetDir := flag.String("assets", "assets", "directory containing the scene textures")
	modelPath := flag.String("model", "", "optional .gltf/.glb mesh to place on the table")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	flag.Parse()

	log := logging.From(context.Background())
	defer log.Sync()

	if err := run(log, *assetDir, *modelPath, *width, *height); err != nil {
		log.Error("Fatal", zap.Error(err))
		os.Exit(1)
	}
}

func run(log *zap.Logger, assetDir, modelPath string, width, height int) error {
	cfg := core.DefaultWindowConfig()
	cfg.Width = width
	cfg.Height = height
	window, err := core.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	version, err := opengl.Init()
	if err != nil {
		return err
	}
	log.Info("OpenGL initialized", zap.String("version", version))

	prog, err := opengl.NewSceneProgram()
	if err != nil {
		return err
	}
	defer prog.Delete()
	prog.Use()

	textures := registry.NewTextureRegistry(opengl.Textures{}, log)
	materials := registry.NewMaterialRegistry()
	pipe := pipeline.New(prog, textures, materials, pipeline.DefaultUniformConfig(), log)

	drawer := newMeshDrawer()
	defer drawer.Release()

	s := tableau.New(pipe, textures, materials, drawer, log)
	defer s.Release()

	if modelPath != "" {
		m, err := scene.LoadGLTFMesh(modelPath)
		if err != nil {
			log.Warn("Skipping imported model", zap.String("path", modelPath), zap.Error(err))
		} else {
			log.Info("Imported model",
				zap.String("path", modelPath),
				zap.Int("triangles", m.TriangleCount()))
			s.SetImportedMesh(m)
		}
	}

	if err := s.Prepare(assetDir); err != nil {
		return err
	}

	// Orbit camera around the table center.
	target := math.NewVec3(0, 1, 0)
	orbitAngle := float32(0)
	orbitRadius := float32(12)
	orbitHeight := float32(4)

	lastFrame := time.Now()
	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		window.PollEvents()
		if window.IsKeyPressed(core.KeyEscape) {
			break
		}
		if window.IsKeyPressed(core.KeyLeft) || window.IsKeyPressed(core.KeyA) {
			orbitAngle -= dt
		}
		if window.IsKeyPressed(core.KeyRight) || window.IsKeyPressed(core.KeyD) {
			orbitAngle += dt
		}
		if window.IsKeyPressed(core.KeyUp) || window.IsKeyPressed(core.KeyW) {
			orbitRadius -= 4 * dt
			if orbitRadius < 3 {
				orbitRadius = 3
			}
		}
		if window.IsKeyPressed(core.KeyDown) || window.IsKeyPressed(core.KeyS) {
			orbitRadius += 4 * dt
			if orbitRadius > 30 {
				orbitRadius = 30
			}
		}

		fbWidth, fbHeight := window.GetFramebufferSize()
		opengl.SetViewport(fbWidth, fbHeight)
		opengl.Clear(0.02, 0.02, 0.04, 1)

		eye := math.NewVec3(
			orbitRadius*float32(stdmath.Sin(float64(orbitAngle))),
			orbitHeight,
			orbitRadius*float32(stdmath.Cos(float64(orbitAngle))),
		)
		viewDir := target.Sub(eye).Normalize()

		prog.Use()
		pipe.SetView(math.Mat4LookAt(eye, target, math.Vec3Up), eye)
		pipe.SetProjection(math.Mat4Perspective(
			math.Radians(45),
			float32(fbWidth)/float32(fbHeight),
			0.1, 100,
		))

		s.Render(eye, viewDir)

		window.SwapBuffers()
	}
	return nil
}
