package ir

// Emitter renders a fully built model into an output artifact. Code
// generators, schema writers and the canonical serializer all implement it.
type Emitter interface {
	Emit(model *MessageModel) ([]byte, error)
}
