/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: serializer.go
Description: Artifact serializer for trained perceptron models. Encodes the
model as JSON inside model packages and registers the serializer type so
packages referencing it can load anywhere the package is linked.
*/

package train

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kleascm/maylee-nlp/pkg/model"
)

// SerializerTypePerceptron is the registered serializer type for trained
// perceptron models.
const SerializerTypePerceptron = "perceptron"

// ModelSerializer round-trips a trained Model through JSON.
type ModelSerializer struct{}

// Serialize writes the model as indented JSON.
func (ModelSerializer) Serialize(w io.Writer, artifact interface{}) error {
	m, ok := artifact.(*Model)
	if !ok {
		return fmt.Errorf("perceptron serializer expects *Model, got %T", artifact)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode perceptron model: %w", err)
	}
	return nil
}

// Deserialize reads a model back and rebuilds its outcome index.
func (ModelSerializer) Deserialize(r io.Reader) (interface{}, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode perceptron model: %w", err)
	}
	m.indexOutcomes()
	return &m, nil
}

func init() {
	model.RegisterSerializerType(SerializerTypePerceptron, func() model.ArtifactSerializer {
		return ModelSerializer{}
	})
}
