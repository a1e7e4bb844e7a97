package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"

	"threads-backend/internal/imagestore"
	"threads-backend/internal/repository"
	"threads-backend/model"
)

// ---- in-memory PostStore ----

type memPostStore struct {
	posts map[bson.ObjectID]*model.Post
}

func newMemPostStore() *memPostStore {
	return &memPostStore{posts: map[bson.ObjectID]*model.Post{}}
}

func (m *memPostStore) Insert(_ context.Context, post model.Post) (model.Post, error) {
	post.ID = bson.NewObjectID()
	if post.Likes == nil {
		post.Likes = []bson.ObjectID{}
	}
	if post.Replies == nil {
		post.Replies = []model.Reply{}
	}
	stored := post
	m.posts[post.ID] = &stored
	return post, nil
}

func (m *memPostStore) FindByID(_ context.Context, id bson.ObjectID) (model.Post, error) {
	p, ok := m.posts[id]
	if !ok {
		return model.Post{}, repository.ErrNotFound
	}
	return *p, nil
}

func (m *memPostStore) Delete(_ context.Context, id bson.ObjectID) error {
	if _, ok := m.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *memPostStore) ToggleLike(_ context.Context, id, actor bson.ObjectID) (bool, error) {
	p, ok := m.posts[id]
	if !ok {
		return false, repository.ErrNotFound
	}
	for i, uid := range p.Likes {
		if uid == actor {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return false, nil
		}
	}
	p.Likes = append(p.Likes, actor)
	return true, nil
}

func (m *memPostStore) AppendReplies(_ context.Context, id bson.ObjectID, replies ...model.Reply) error {
	p, ok := m.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.Replies = append(p.Replies, replies...)
	return nil
}

func (m *memPostStore) FindByAuthors(_ context.Context, authors []bson.ObjectID) ([]model.Post, error) {
	in := map[bson.ObjectID]bool{}
	for _, a := range authors {
		in[a] = true
	}
	out := []model.Post{}
	for _, p := range m.posts {
		if in[p.PostedBy] {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ---- in-memory UserStore ----

type memUserStore struct {
	users map[bson.ObjectID]model.User
}

func newMemUserStore(users ...model.User) *memUserStore {
	m := &memUserStore{users: map[bson.ObjectID]model.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memUserStore) FindByID(_ context.Context, id bson.ObjectID) (model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (m *memUserStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (m *memUserStore) Insert(_ context.Context, user model.User) (model.User, error) {
	user.ID = bson.NewObjectID()
	m.users[user.ID] = user
	return user, nil
}

// ---- fake image store ----

type fakeImageStore struct {
	uploads   int
	destroyed []string
}

func (f *fakeImageStore) Upload(_ context.Context, _ string) (imagestore.Image, error) {
	f.uploads++
	id := fmt.Sprintf("img-%d", f.uploads)
	return imagestore.Image{URL: "http://localhost:5000/uploads/" + id + ".png", ID: id}, nil
}

func (f *fakeImageStore) Destroy(_ context.Context, id string) error {
	f.destroyed = append(f.destroyed, id)
	return nil
}

// ---- fake bot replier ----

type fakeReplier struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeReplier) Reply(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

var errBotDown = errors.New("model unavailable")
