// Package service runs status side effects against the platform and re-reads the result
package service

import (
	"context"

	"mastoshim/internal/adapters/platform/graph"
	"mastoshim/internal/core/fields"
	"mastoshim/internal/core/mapper"
	"mastoshim/internal/core/schema"
	perr "mastoshim/internal/platform/errors"
	"mastoshim/internal/platform/graphql"
	"mastoshim/internal/platform/logger"
)

// Interaction types
const (
	Favourite   = "favourite"
	Unfavourite = "unfavourite"
	Reblog      = "reblog"
	Unreblog    = "unreblog"
	Bookmark    = "bookmark"
	Unbookmark  = "unbookmark"
)

// Effect performs the action on the platform; the result may carry the id of the activity it created
type Effect func(ctx context.Context, id string) (result any, err error)

// InteractionOptions describe one action
type InteractionOptions struct {
	Type string
	// Effect is required
	Effect Effect
	// ResultFlag is the Status flag the action sets, forced onto the response
	ResultFlag  string
	ResultValue bool
}

// Interactions performs actions and answers with the refreshed Status
type Interactions struct {
	gql    graphql.Executor
	mapper *mapper.Mapper
	log    *logger.Logger
}

// NewInteractions builds the handler
func NewInteractions(gql graphql.Executor, m *mapper.Mapper) *Interactions {
	return &Interactions{gql: gql, mapper: m, log: logger.Named("interactions")}
}

// Interact runs the effect for actorID on status id, re-reads the status and maps it
//
// an effect error is returned as is; a panic in the effect or the re-read becomes not found
func (s *Interactions) Interact(ctx context.Context, actorID, id string, o InteractionOptions) (rec schema.Record, err error) {
	if actorID == "" {
		return nil, perr.Unauthorizedf("interaction requires a user")
	}
	defer func() {
		if p := recover(); p != nil {
			s.log.Error().
				Interface("panic", p).
				Str("type", o.Type).
				Str("status_id", id).
				Msg("interaction panicked")
			rec, err = nil, perr.NotFoundf("status %s", id)
		}
	}()

	if o.Effect == nil {
		return nil, perr.Internalf("interaction %s has no effect", o.Type)
	}
	result, err := o.Effect(ctx, id)
	if err != nil {
		return nil, err
	}

	post, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	opts := mapper.Options{CurrentUserID: actorID}
	status := s.mapper.StatusFromActivity(ctx, post, opts)
	if status == nil {
		return nil, perr.NotFoundf("status %s", id)
	}
	if o.ResultFlag != "" {
		status[o.ResultFlag] = o.ResultValue
	}

	if o.Type != Reblog {
		return status, nil
	}
	boostID := fields.String(fields.Get(result, "id"))
	if boostID == "" {
		boostID = id
	}
	account := s.mapper.AccountFromUser(ctx, s.actor(ctx, actorID, post), mapper.Options{CurrentUserID: actorID, Lightweight: true})
	wrapper := s.mapper.WrapReblog(boostID, account, status)
	if wrapper == nil {
		return nil, perr.NotFoundf("status %s", id)
	}
	if at := fields.FormatDatetime(fields.Get(result, "created_at")); at != nil {
		wrapper["created_at"] = at
	}
	return wrapper, nil
}

// fetch reads the fully loaded post
func (s *Interactions) fetch(ctx context.Context, id string) (any, error) {
	res := graph.Post.Do(ctx, s.gql, map[string]any{"id": id})
	if res.Err != nil {
		return nil, res.Err
	}
	post := fields.Get(res.Data, "post")
	if post == nil {
		if len(res.Errors) > 0 {
			return nil, res.Errors
		}
		return nil, perr.NotFoundf("status %s", id)
	}
	return post, nil
}

// actor resolves the booster; the post's own creator stands in when it is the caller
func (s *Interactions) actor(ctx context.Context, actorID string, post any) any {
	if creator := fields.GetFields(post, "created.creator", "creator"); fields.String(fields.Get(creator, "id")) == actorID {
		return creator
	}
	res := graph.User.Do(ctx, s.gql, map[string]any{"id": actorID})
	if res.Err != nil {
		s.log.Warn().Err(res.Err).Str("user_id", actorID).Msg("booster lookup failed")
		return nil
	}
	return fields.Get(res.Data, "user")
}

// Actions maps each interaction type to its options over the platform mutations
func Actions(gql graphql.Executor) map[string]InteractionOptions {
	mutate := func(op graph.Op, key string) Effect {
		return func(ctx context.Context, id string) (any, error) {
			res := op.Do(ctx, gql, map[string]any{"id": id})
			if res.Err != nil {
				return nil, res.Err
			}
			if len(res.Errors) > 0 {
				return nil, res.Errors
			}
			return fields.Get(res.Data, key), nil
		}
	}
	return map[string]InteractionOptions{
		Favourite:   {Type: Favourite, Effect: mutate(graph.Like, "like"), ResultFlag: "favourited", ResultValue: true},
		Unfavourite: {Type: Unfavourite, Effect: mutate(graph.Unlike, "delete_like"), ResultFlag: "favourited", ResultValue: false},
		Reblog:      {Type: Reblog, Effect: mutate(graph.Boost, "boost"), ResultFlag: "reblogged", ResultValue: true},
		Unreblog:    {Type: Unreblog, Effect: mutate(graph.Unboost, "delete_boost"), ResultFlag: "reblogged", ResultValue: false},
		Bookmark:    {Type: Bookmark, Effect: mutate(graph.Bookmark, "bookmark"), ResultFlag: "bookmarked", ResultValue: true},
		Unbookmark:  {Type: Unbookmark, Effect: mutate(graph.Unbookmark, "delete_bookmark"), ResultFlag: "bookmarked", ResultValue: false},
	}
}
