package events

// Handler 事件回调
type Handler func(Event)

// Bus 同步事件总线
//
// 架构:
//   - 单线程同步分发：Publish 返回前所有回调都已执行
//   - 同一事件类型可注册多个回调，按注册顺序调用
//   - 通配订阅者在类型订阅者之后调用
//
// 事件在产生它的那一帧内、按产生顺序送达。
type Bus struct {
	handlers map[EventType][]Handler
	all      []Handler
}

// NewBus 创建空的事件总线
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe 注册指定类型的回调
func (b *Bus) Subscribe(t EventType, fn Handler) {
	b.handlers[t] = append(b.handlers[t], fn)
}

// SubscribeAll 注册接收所有事件的回调（观战、录制等）
func (b *Bus) SubscribeAll(fn Handler) {
	b.all = append(b.all, fn)
}

// Publish 发布事件，同步调用所有回调
func (b *Bus) Publish(ev Event) {
	for _, fn := range b.handlers[ev.Type] {
		fn(ev)
	}
	for _, fn := range b.all {
		fn(ev)
	}
}
