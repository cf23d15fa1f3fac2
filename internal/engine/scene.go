package engine

import "slices"

// Scene owns the GameObjects of a level, updated in insertion order
type Scene struct {
	Name        string
	GameObjects []*GameObject
	byUID       map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:  name,
		byUID: make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.byUID[g.UID] = g
}

// RemoveGameObject detaches g, keeping the order of the rest
func (s *Scene) RemoveGameObject(g *GameObject) {
	i := slices.Index(s.GameObjects, g)
	if i < 0 {
		return
	}
	s.GameObjects = slices.Delete(s.GameObjects, i, i+1)
	delete(s.byUID, g.UID)
	g.Scene = nil
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.byUID[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	i := slices.IndexFunc(s.GameObjects, func(g *GameObject) bool { return g.Name == name })
	if i < 0 {
		return nil
	}
	return s.GameObjects[i]
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var found []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			found = append(found, g)
		}
	}
	return found
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
