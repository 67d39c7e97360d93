package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/printforge/printforge/pkg/export"
	"github.com/printforge/printforge/pkg/geom"
	"github.com/printforge/printforge/pkg/ingest"
	"github.com/printforge/printforge/pkg/kernel"
	"github.com/printforge/printforge/pkg/kernel/sdfx"
	"github.com/printforge/printforge/pkg/pricing"
)

// quoteEvent is the runtime event re-pushed to the frontend whenever
// the active mesh or scale changes.
const quoteEvent = "quote:updated"

// App is the Wails backend. It owns the session state and exposes
// methods to the frontend via bindings. State is mutated only by the
// frontend dispatcher, which serializes calls; there is no concurrent
// writer and no locking.
type App struct {
	ctx    context.Context
	kernel kernel.Kernel

	// Session state: selected material, appearance overrides, scale
	// multiplier and the loaded mesh (nil means the built-in
	// placeholder is shown).
	mesh        *geom.Mesh
	material    pricing.MaterialProfile
	color       string
	roughness   float64
	metalness   float64
	scale       float64
	placeholder *geom.Mesh
	loadSeq     uint64
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
}

// AppearanceData reports the active appearance after a material switch
// or a manual override.
type AppearanceData struct {
	MaterialID string  `json:"materialId"`
	Color      string  `json:"color"`
	Roughness  float64 `json:"roughness"`
	Metalness  float64 `json:"metalness"`
	Error      string  `json:"error,omitempty"`
}

// LoadResult is the full result of a model load returned to the frontend.
type LoadResult struct {
	Mesh      *MeshData      `json:"mesh,omitempty"`
	Quote     *pricing.Quote `json:"quote,omitempty"`
	Discarded bool           `json:"discarded,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// ArtifactData is a downloadable byte artifact (glTF scene or PNG
// snapshot). Data serializes as base64 across the binding boundary.
type ArtifactData struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data,omitempty"`
	Error       string `json:"error,omitempty"`
}

// NewApp creates a new App with the sdfx kernel and default session state.
func NewApp() *App {
	a := &App{
		kernel: sdfx.New(),
		scale:  1.0,
	}
	a.applyMaterial(pricing.Default())
	return a
}

// startup is called by Wails on app startup. The context is saved for
// runtime calls (events, dialogs) later.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// activeMesh returns the loaded mesh, or the built-in placeholder when
// nothing has been loaded yet.
func (a *App) activeMesh() *geom.Mesh {
	if a.mesh != nil {
		return a.mesh
	}
	if a.placeholder == nil {
		m, err := kernel.Placeholder(a.kernel)
		if err != nil {
			log.Printf("placeholder generation failed: %v", err)
			m = geom.NewMesh("placeholder")
		}
		a.placeholder = m
	}
	return a.placeholder
}

// applyMaterial selects a material and resets the appearance overrides
// to its defaults. Material selection deliberately clobbers manual
// appearance edits.
func (a *App) applyMaterial(m pricing.MaterialProfile) {
	a.material = m
	a.color = m.Color
	a.roughness = m.Roughness
	a.metalness = m.Metalness
}

func (a *App) appearance() AppearanceData {
	return AppearanceData{
		MaterialID: a.material.ID,
		Color:      a.color,
		Roughness:  a.roughness,
		Metalness:  a.metalness,
	}
}

// quote recomputes volume and cost from the current state. Always a
// fresh derivation, never cached across mesh or scale changes.
func (a *App) quote() pricing.Quote {
	return pricing.Derive(a.activeMesh(), a.scale, a.material)
}

// emitQuote pushes the recomputed quote to the frontend. Outside a
// Wails runtime (tests, CLI reuse) there is no context and no event.
func (a *App) emitQuote(q pricing.Quote) {
	if a.ctx == nil {
		return
	}
	runtime.EventsEmit(a.ctx, quoteEvent, q)
}

// LoadModel ingests a model file selected by the user. On failure the
// prior mesh and state are retained. If a newer load begins before this
// one finishes parsing, this result is discarded: last load wins.
func (a *App) LoadModel(name string, data []byte) LoadResult {
	a.loadSeq++
	seq := a.loadSeq

	m, err := ingest.Ingest(data, name)
	if err != nil {
		log.Printf("ingest %q: %v", name, err)
		return LoadResult{Error: ingestMessage(err)}
	}
	if seq != a.loadSeq {
		return LoadResult{Discarded: true}
	}

	a.mesh = m
	q := a.quote()
	a.emitQuote(q)
	return LoadResult{Mesh: a.meshData(m), Quote: &q}
}

// ingestMessage converts ingestion errors to user-facing messages.
// Parser errors never propagate past this boundary.
func ingestMessage(err error) string {
	var ufe *ingest.UnsupportedFormatError
	var mde *ingest.MalformedDataError
	switch {
	case errors.As(err, &ufe), errors.As(err, &mde):
		return err.Error()
	default:
		return "could not load model"
	}
}

func (a *App) meshData(m *geom.Mesh) *MeshData {
	return &MeshData{
		Vertices: m.Positions,
		Normals:  m.Normals,
		Name:     m.Name,
		Color:    a.color,
	}
}

// MeshView returns the currently displayed mesh for the frontend
// renderer (the placeholder until a model is loaded).
func (a *App) MeshView() *MeshData {
	return a.meshData(a.activeMesh())
}

// Materials returns the static catalog for the material picker.
func (a *App) Materials() []pricing.MaterialProfile {
	return pricing.Profiles()
}

// SetMaterial selects a material by identifier, resetting appearance
// overrides to its defaults, and re-pushes the quote. An identifier
// outside the catalog is a caller contract violation and surfaces a
// generic error.
func (a *App) SetMaterial(id string) AppearanceData {
	m, err := pricing.Lookup(id)
	if err != nil {
		log.Printf("material lookup: %v", err)
		return AppearanceData{Error: "internal error: unknown material"}
	}
	a.applyMaterial(m)
	a.emitQuote(a.quote())
	return a.appearance()
}

// SetScale updates the scale multiplier, clamped to the allowed range,
// and returns the freshly derived quote.
func (a *App) SetScale(s float64) pricing.Quote {
	a.scale = pricing.ClampScale(s)
	q := a.quote()
	a.emitQuote(q)
	return q
}

// SetColor overrides the material's display color for this session.
func (a *App) SetColor(hex string) AppearanceData {
	a.color = hex
	return a.appearance()
}

// SetRoughness overrides roughness, clamped to [0, 1].
func (a *App) SetRoughness(v float64) AppearanceData {
	a.roughness = clamp01(v)
	return a.appearance()
}

// SetMetalness overrides metalness, clamped to [0, 1].
func (a *App) SetMetalness(v float64) AppearanceData {
	a.metalness = clamp01(v)
	return a.appearance()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Quote recomputes and returns the current volume/cost pair.
func (a *App) Quote() pricing.Quote {
	return a.quote()
}

// ExportScene serializes the current mesh and scale as a glTF artifact.
// The applied scale goes into the node transform, not the vertex data.
// matchMaterial exports the live material instead of the neutral
// appearance. Heavy meshes are decimated to the export budget first.
func (a *App) ExportScene(binary, matchMaterial bool) ArtifactData {
	opts := export.Options{Scale: a.scale, Binary: binary}
	if matchMaterial {
		m := a.material
		m.Color = a.color
		m.Roughness = a.roughness
		m.Metalness = a.metalness
		opts.Material = &m
	}

	mesh := export.Decimate(a.activeMesh(), export.DefaultTriangleBudget)
	data, err := export.GLTF(mesh, opts)
	if err != nil {
		log.Printf("export: %v", err)
		return ArtifactData{Error: "could not export scene"}
	}
	return ArtifactData{
		FileName:    opts.FileName(),
		ContentType: opts.ContentType(),
		Data:        data,
	}
}

// SaveExport writes the glTF artifact to a user-chosen path via the
// native save dialog. Returns the chosen path, empty when cancelled.
func (a *App) SaveExport(binary, matchMaterial bool) (string, error) {
	if a.ctx == nil {
		return "", errors.New("no window to open a dialog from")
	}
	artifact := a.ExportScene(binary, matchMaterial)
	if artifact.Error != "" {
		return "", errors.New(artifact.Error)
	}
	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		Title:           "Export scene",
		DefaultFilename: artifact.FileName,
	})
	if err != nil || path == "" {
		return "", err
	}
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Snapshot encodes the frontend-captured framebuffer as PNG. With no
// renderable surface yet it fails silently with an empty artifact.
func (a *App) Snapshot(width, height int, rgba []byte) ArtifactData {
	data := export.Snapshot(width, height, rgba)
	if data == nil {
		return ArtifactData{}
	}
	return ArtifactData{
		FileName:    export.SnapshotFileName,
		ContentType: export.SnapshotContentType,
		Data:        data,
	}
}
