package sources

import "github.com/kerbaras/library/pkg/data"

type Builtin struct{}

func NewBuiltin() *Builtin {
	return &Builtin{}
}

func (b *Builtin) Name() string {
	return "built-in collection"
}

func (b *Builtin) Load() ([]*data.Item, error) {
	return []*data.Item{
		data.NewItem("Percy Jackson: The Lightning Thief", "Rick Riordan", "Fantasy"),
		data.NewItem("Percy Jackson: The Sea of Monsters", "Rick Riordan", "Fantasy"),
		data.NewItem("Frankenstein", "Mary Shelley", "Gothic"),
		data.NewItem("The Castle of Otranto", "Horace Walpole", "Gothic"),
		data.NewItem("Dune", "Frank Herbert", "Science Fiction"),
		data.NewItem("Brave New World", "Aldous Huxley", "Science Fiction"),
	}, nil
}
