package main

// Message carries an encoded statement between two parties.
type Message struct {
	From, To string
	Data     []byte
}

type Network interface {
	Send(msg *Message)
	Next(id string) <-chan *Message
}

type chanNetwork struct {
	listenChannels map[string]chan *Message
}

func NewNetwork(parties ...string) Network {
	lc := make(map[string]chan *Message, len(parties))
	for _, id := range parties {
		lc[id] = make(chan *Message, 2*len(parties))
	}
	return &chanNetwork{listenChannels: lc}
}

func (c *chanNetwork) Next(id string) <-chan *Message {
	return c.listenChannels[id]
}

func (c *chanNetwork) Send(msg *Message) {
	c.listenChannels[msg.To] <- msg
}
