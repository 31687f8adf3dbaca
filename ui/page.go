package ui

import (
	"context"

	"github.com/muhammadheryan/femnest/constant"
	"github.com/muhammadheryan/femnest/model"
	"github.com/muhammadheryan/femnest/utils/errors"
)

type route string

const (
	routeLanding      route = constant.LandingPath
	routePersonalInfo route = "/personal-info"
)

// pageBase ties a page's asynchronous work to its lifetime. Leaving the page
// cancels ctx; results tagged with an older id are discarded.
type pageBase struct {
	id     int
	ctx    context.Context
	cancel context.CancelFunc
	next   *route
}

func newPageBase(parent context.Context, id int) pageBase {
	ctx, cancel := context.WithCancel(parent)
	return pageBase{id: id, ctx: ctx, cancel: cancel}
}

func (p *pageBase) navigate(r route) {
	p.next = &r
}

// takeNext returns and clears a pending navigation request.
func (p *pageBase) takeNext() (route, bool) {
	if p.next == nil {
		return "", false
	}
	r := *p.next
	p.next = nil
	return r, true
}

// pageMsg is implemented by results of work started on a page.
type pageMsg interface {
	pageID() int
}

type authDoneMsg struct {
	page      int
	mode      constant.AuthMode
	res       *model.CredentialResponse
	sessionID string
	err       error
}

func (m authDoneMsg) pageID() int { return m.page }

type questionsDoneMsg struct {
	page int
	res  *model.QuestionResponse
	err  error
}

func (m questionsDoneMsg) pageID() int { return m.page }

type profileSavedMsg struct {
	page int
	res  *model.PersonalInfoResponse
	err  error
}

func (m profileSavedMsg) pageID() int { return m.page }

func notificationFor(err error) model.Notification {
	if ce, ok := err.(errors.CustomError); ok {
		return ce.Notification()
	}
	return errors.SetCustomError(constant.ErrInternal).Notification()
}
