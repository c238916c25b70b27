package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testTagComponent struct {
	Name string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试ID从1开始且唯一
	if id1 != 1 || id2 != 2 {
		t.Errorf("expected IDs 1 and 2, got %d and %d", id1, id2)
	}

	if em.Len() != 2 {
		t.Errorf("Len() = %d, want 2", em.Len())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 100, Y: 200})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("component should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("component data mismatch, got (%f, %f)", pos.X, pos.Y)
	}

	// 泛型与反射接口应返回同一实例
	raw, ok := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !ok || raw.(*testPositionComponent) != pos {
		t.Error("reflect lookup should return the same pointer")
	}

	if _, ok := GetComponent[*testTagComponent](em, id); ok {
		t.Error("tag component should not be present")
	}

	// 不存在的实体上添加组件被忽略
	AddComponent(em, 99, &testTagComponent{})
	if _, ok := GetComponent[*testTagComponent](em, 99); ok {
		t.Error("component on unknown entity should be ignored")
	}
}

func TestEntitiesKeepCreationOrder(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 5)
	for i := 0; i < 5; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i * 100)})
		ids = append(ids, id)
	}

	// 从前端移除两个实体后，剩余实体保持原有顺序
	em.RemoveFirst()
	em.RemoveFirst()

	got := em.Entities()
	want := []EntityID{ids[2], ids[3], ids[4]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Entities() = %v, want %v", got, want)
	}

	// 返回的是副本
	got[0] = 0
	if first, _ := em.First(); first != ids[2] {
		t.Errorf("modifying Entities() result changed the manager, First() = %d", first)
	}
}

func TestRemoveFirst(t *testing.T) {
	em := NewEntityManager()

	if _, ok := em.RemoveFirst(); ok {
		t.Fatal("RemoveFirst on empty manager should report false")
	}

	a := em.CreateEntity()
	b := em.CreateEntity()
	AddComponent(em, a, &testTagComponent{Name: "a"})

	first, ok := em.First()
	if !ok || first != a {
		t.Fatalf("First() = %d, %v; want %d, true", first, ok, a)
	}

	removed, ok := em.RemoveFirst()
	if !ok || removed != a {
		t.Fatalf("RemoveFirst() = %d, %v; want %d, true", removed, ok, a)
	}
	if _, ok := GetComponent[*testTagComponent](em, a); ok {
		t.Error("components of removed entity should be gone")
	}

	first, _ = em.First()
	if first != b {
		t.Errorf("First() after removal = %d, want %d", first, b)
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	em.CreateEntity()

	em.Clear()
	if em.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", em.Len())
	}

	// ID 不回退，避免旧引用误指向新实体
	if id := em.CreateEntity(); id != 3 {
		t.Errorf("next ID after Clear = %d, want 3", id)
	}
}
