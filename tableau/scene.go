// Package tableau assembles and renders the still-life scene: a wood table
// carrying a tabasco bottle, a water bottle, a record sleeve, and a coffee
// mug, lit by a ceiling of point lights and a camera flashlight.
package tableau

import (
	"path/filepath"

	"go.uber.org/zap"

	"tableau/math"
	"tableau/pipeline"
	"tableau/registry"
	"tableau/scene"
)

// MeshDrawer issues the draw call for a mesh with the current uniform state.
// The OpenGL adapter lives in cmd/tableau; tests substitute a counter.
type MeshDrawer interface {
	DrawMesh(m *scene.Mesh)
}

// sceneTextures maps asset file names to the tags the draw script uses.
var sceneTextures = []struct {
	file string
	tag  string
}{
	{"wood2.jpg", "floor"},
	{"Texturelabs_Glass_134S.jpg", "tbottle"},
	{"metalbottle.jpg", "bottle"},
	{"tabasco.png", "tlabel"},
	{"Texturelabs_Paper_334S.jpg", "hdrive"},
	{"mouth.jpg", "smile"},
	{"coffee.png", "coffee"},
}

// pointLightPositions is the fixed ceiling rig above the table.
var pointLightPositions = []math.Vec3{
	{X: -4, Y: 8, Z: 0},
	{X: 4, Y: 8, Z: 0},
	{X: 3.8, Y: 5.5, Z: 4},
	{X: 3.8, Y: 3.5, Z: 4},
	{X: -3.2, Y: 6, Z: -4},
}

// Scene owns the tableau geometry and drives the pipeline each frame.
type Scene struct {
	pipe      *pipeline.Pipeline
	textures  *registry.TextureRegistry
	materials *registry.MaterialRegistry
	drawer    MeshDrawer
	log       *zap.Logger

	plane    *scene.Mesh
	box      *scene.Mesh
	cylinder *scene.Mesh
	prism    *scene.Mesh
	torus    *scene.Mesh
	sphere   *scene.Mesh

	imported *scene.Mesh
}

// New builds the scene geometry. Prepare must be called before Render.
func New(pipe *pipeline.Pipeline, textures *registry.TextureRegistry, materials *registry.MaterialRegistry, drawer MeshDrawer, log *zap.Logger) *Scene {
	return &Scene{
		pipe:      pipe,
		textures:  textures,
		materials: materials,
		drawer:    drawer,
		log:       log.Named("tableau"),

		plane:    scene.CreatePlane(1, 1, 1),
		box:      scene.CreateBox(1, 1, 1),
		cylinder: scene.CreateCylinder(0.5, 1, 32),
		prism:    scene.CreatePrism(1, 1, 1),
		torus:    scene.CreateTorus(0.3, 0.08, 32, 16),
		sphere:   scene.CreateSphere(0.5, 32, 16),
	}
}

// SetImportedMesh places an externally loaded mesh on the table.
func (s *Scene) SetImportedMesh(m *scene.Mesh) {
	s.imported = m
}

// Meshes returns every mesh the scene may draw, for GPU upload.
func (s *Scene) Meshes() []*scene.Mesh {
	meshes := []*scene.Mesh{s.plane, s.box, s.cylinder, s.prism, s.torus, s.sphere}
	if s.imported != nil {
		meshes = append(meshes, s.imported)
	}
	return meshes
}

// Prepare loads the scene textures, defines the surface materials, binds
// every texture to its unit, and configures the light rig. A texture that
// fails to load is logged and skipped; the draw script tolerates the missing
// tag, so one bad asset never takes the scene down.
func (s *Scene) Prepare(assetDir string) error {
	for _, st := range sceneTextures {
		path := filepath.Join(assetDir, st.file)
		if err := s.textures.Load(path, st.tag); err != nil {
			s.log.Warn("Skipping texture",
				zap.String("tag", st.tag),
				zap.String("path", path),
				zap.Error(err))
		}
	}
	s.textures.BindAll()

	s.materials.Define("glass", math.NewVec3(0.6, 0.7, 0.8), math.NewVec3(0.9, 0.9, 1.0), 85)
	s.materials.Define("metal", math.NewVec3(0.5, 0.5, 0.5), math.NewVec3(0.8, 0.8, 0.8), 50)
	s.materials.Define("wood", math.NewVec3(0.6, 0.4, 0.2), math.NewVec3(0.2, 0.1, 0.1), 10)

	s.pipe.SetLightingEnabled(true)
	s.pipe.SetDirectionalLight(pipeline.DirectionalLight{
		Direction: math.NewVec3(-0.05, -0.3, -0.1),
		Ambient:   math.NewVec3(0.05, 0.05, 0.05),
		Diffuse:   math.NewVec3(0.6, 0.6, 0.6),
		Specular:  math.Vec3Zero,
	})
	for i, pos := range pointLightPositions {
		if err := s.pipe.SetPointLight(i, pipeline.PointLight{
			Position: pos,
			Ambient:  math.NewVec3(0.05, 0.05, 0.05),
			Diffuse:  math.NewVec3(0.4, 0.4, 0.4),
			Specular: math.NewVec3(0.3, 0.3, 0.3),
		}); err != nil {
			return err
		}
	}
	return nil
}

// Render draws one frame of the tableau. viewPos and viewDir drive the
// flashlight spot so it follows the camera.
func (s *Scene) Render(viewPos, viewDir math.Vec3) {
	s.pipe.SetSpotLight(pipeline.SpotLight{
		Position:       viewPos,
		Direction:      viewDir,
		Ambient:        math.NewVec3(0.8, 0.8, 0.8),
		Diffuse:        math.NewVec3(1.0, 1.0, 1.0),
		Specular:       math.NewVec3(0.7, 0.7, 0.7),
		Constant:       1.0,
		Linear:         0.09,
		Quadratic:      0.032,
		CutOffDeg:      42.5,
		OuterCutOffDeg: 48.0,
	})

	s.drawTable()
	s.drawTabascoBottle()
	s.drawWaterBottle()
	s.drawRecordSleeve()
	s.drawCoffeeMug()

	if s.imported != nil {
		s.pipe.SetUVScale(1, 1)
		s.pipe.SetTransform(math.Vec3One, math.Vec3Zero, math.NewVec3(0, 0, -3))
		s.pipe.SetColor(0.9, 0.9, 0.9, 1)
		s.pipe.SetMaterial("metal")
		s.drawer.DrawMesh(s.imported)
	}
}

func (s *Scene) drawTable() {
	s.pipe.SetTransform(math.NewVec3(20, 1, 10), math.Vec3Zero, math.Vec3Zero)
	s.pipe.SetTexture("floor")
	s.pipe.SetMaterial("wood")
	s.pipe.SetUVScale(4, 2)
	s.drawer.DrawMesh(s.plane)
	s.pipe.SetUVScale(1, 1)
}

func (s *Scene) drawTabascoBottle() {
	// Body and neck share the glass bottle texture.
	s.pipe.SetTexture("tbottle")
	s.pipe.SetMaterial("glass")
	s.pipe.SetTransform(math.NewVec3(0.4, 0.9, 0.4), math.Vec3Zero, math.NewVec3(0, 0.45, 0))
	s.drawer.DrawMesh(s.cylinder)
	s.pipe.SetTransform(math.NewVec3(0.25, 0.6, 0.25), math.Vec3Zero, math.NewVec3(0, 0.9, 0))
	s.drawer.DrawMesh(s.cylinder)

	// Red cap.
	s.pipe.SetColor(0.8, 0.08, 0.05, 1)
	s.pipe.SetMaterial("metal")
	s.pipe.SetTransform(math.NewVec3(0.3, 0.3, 0.3), math.Vec3Zero, math.NewVec3(0, 1.5, 0))
	s.drawer.DrawMesh(s.prism)

	// Paper label on the front face.
	s.pipe.SetTexture("tlabel")
	s.pipe.SetMaterial("wood")
	s.pipe.SetTransform(math.NewVec3(0.2, 0.45, 0.025), math.Vec3Zero, math.NewVec3(0, 0.5, 0.4))
	s.drawer.DrawMesh(s.box)
}

func (s *Scene) drawWaterBottle() {
	s.pipe.SetTexture("bottle")
	s.pipe.SetMaterial("metal")
	s.pipe.SetTransform(math.NewVec3(0.5, 1.4, 0.5), math.Vec3Zero, math.NewVec3(-3, 0.7, 0))
	s.drawer.DrawMesh(s.cylinder)
	s.pipe.SetTransform(math.NewVec3(0.2, 0.25, 0.2), math.Vec3Zero, math.NewVec3(-3, 1.5, 0))
	s.drawer.DrawMesh(s.cylinder)
}

func (s *Scene) drawRecordSleeve() {
	s.pipe.SetTexture("hdrive")
	s.pipe.SetMaterial("wood")
	s.pipe.SetUVScale(1, 1)
	s.pipe.SetTransform(math.NewVec3(2, 0.05, 3), math.Vec3Zero, math.NewVec3(0, 0.025, 3))
	s.drawer.DrawMesh(s.box)
}

func (s *Scene) drawCoffeeMug() {
	s.pipe.SetTexture("coffee")
	s.pipe.SetMaterial("glass")
	s.pipe.SetTransform(math.NewVec3(0.5, 0.6, 0.5), math.Vec3Zero, math.NewVec3(3, 0.3, 0))
	s.drawer.DrawMesh(s.cylinder)

	// Handle: the torus stood upright against the side of the mug.
	s.pipe.SetColor(0.9, 0.9, 0.95, 1)
	s.pipe.SetMaterial("metal")
	s.pipe.SetTransform(math.NewVec3(0.6, 0.6, 0.6), math.NewVec3(0, 0, 90), math.NewVec3(3.3, 0.3, 0))
	s.drawer.DrawMesh(s.torus)

	// Smiley face resting on the record sleeve.
	s.pipe.SetTexture("smile")
	s.pipe.SetMaterial("glass")
	s.pipe.SetTransform(math.NewVec3(0.8, 0.8, 0.8), math.NewVec3(0, 180, 0), math.NewVec3(0, 0.45, 3))
	s.drawer.DrawMesh(s.sphere)
}

// Release frees the texture registry's GPU handles. Meshes are CPU-side and
// garbage collected; the backend owns their buffers.
func (s *Scene) Release() {
	s.textures.Release()
}
