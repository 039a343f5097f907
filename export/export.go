// Package export writes the sampled cube surface as a glTF point cloud.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/lixenwraith/ascii-cube/orient"
	"github.com/lixenwraith/ascii-cube/render"
	"github.com/lixenwraith/ascii-cube/scene"
)

// ErrNoPoints is returned when the parameters sample no surface
var ErrNoPoints = errors.New("no surface points to export")

const generator = "ascii-cube point cloud"

// Build creates a document with one POINTS primitive holding every sample of the cube
// as posed by state: positions in rotated cube space, colors from the face palette
func Build(state orient.State, p scene.Params) (*gltf.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	points, err := render.SamplePoints(p)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	rot := render.RotationFor(state, p)
	positions := make([][3]float32, len(points))
	colors := make([][4]float32, len(points))
	for i, pt := range points {
		positions[i] = rot.Apply(pt.Pos).Array()
		r, g, b := render.FaceColor(pt.Char).RGB()
		colors[i] = [4]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = generator

	posAccessor := modeler.WritePosition(doc, positions)
	colorAccessor := modeler.WriteColor(doc, colors)
	prim := &gltf.Primitive{
		Mode: gltf.PrimitivePoints,
		Attributes: gltf.PrimitiveAttributes{
			gltf.POSITION: posAccessor,
			gltf.COLOR_0:  colorAccessor,
		},
	}

	mesh := &gltf.Mesh{Name: fmt.Sprintf("cube-%s", p.Mode), Primitives: []*gltf.Primitive{prim}}
	doc.Meshes = []*gltf.Mesh{mesh}
	doc.Nodes = []*gltf.Node{{Name: mesh.Name, Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc, nil
}

// Encode writes the point cloud as binary glTF to w
func Encode(w io.Writer, state orient.State, p scene.Params) error {
	doc, err := Build(state, p)
	if err != nil {
		return err
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode glTF: %w", err)
	}
	return nil
}

// Save writes the point cloud to a .glb file at path
func Save(path string, state orient.State, p scene.Params) error {
	doc, err := Build(state, p)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
