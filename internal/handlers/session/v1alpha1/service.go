package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpg.session.v1alpha1.SessionService"

// FullMethod returns the wire path of a method, e.g. "/rpg.session.v1alpha1.SessionService/Attack"
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// SessionServiceServer is the server API for the session service
type SessionServiceServer interface {
	CreateSession(context.Context, *CreateSessionRequest) (*SessionResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*GetSessionResponse, error)
	ListSessions(context.Context, *ListSessionsRequest) (*ListSessionsResponse, error)
	DeleteSession(context.Context, *SessionRequest) (*DeleteSessionResponse, error)
	StartSession(context.Context, *SessionRequest) (*SessionResponse, error)
	PauseSession(context.Context, *SessionRequest) (*SessionResponse, error)
	ContinueSession(context.Context, *SessionRequest) (*SessionResponse, error)
	StopSession(context.Context, *SessionRequest) (*SessionResponse, error)

	EndTurn(context.Context, *EndTurnRequest) (*TurnResponse, error)
	PostponeTurn(context.Context, *PostponeTurnRequest) (*TurnResponse, error)
	GetTurn(context.Context, *GetTurnRequest) (*GetTurnResponse, error)

	AddEntity(context.Context, *AddEntityRequest) (*EntityResponse, error)
	RemoveEntity(context.Context, *EntityRequest) (*EntityResponse, error)
	GetEntity(context.Context, *EntityRequest) (*EntityResponse, error)
	UpdateEntity(context.Context, *UpdateEntityRequest) (*UpdateEntityResponse, error)

	Attack(context.Context, *AttackRequest) (*AttackResponse, error)
	SavingThrow(context.Context, *SavingThrowRequest) (*SavingThrowResponse, error)
	AddEffect(context.Context, *AddEffectRequest) (*EntityResponse, error)
	SetReaction(context.Context, *SetReactionRequest) (*EntityResponse, error)
	RollDice(context.Context, *RollDiceRequest) (*RollDiceResponse, error)

	GetHistory(context.Context, *GetHistoryRequest) (*GetHistoryResponse, error)
	AppendHistory(context.Context, *AppendHistoryRequest) (*AppendHistoryResponse, error)

	ListMonsterTemplates(context.Context, *emptypb.Empty) (*ListMonsterTemplatesResponse, error)
}

// RegisterSessionServiceServer registers srv on s
func RegisterSessionServiceServer(s grpc.ServiceRegistrar, srv SessionServiceServer) {
	s.RegisterService(&SessionServiceDesc, srv)
}

// SessionServiceDesc describes the session service to grpc.Server
var SessionServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SessionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateSession", SessionServiceServer.CreateSession),
		unary("GetSession", SessionServiceServer.GetSession),
		unary("ListSessions", SessionServiceServer.ListSessions),
		unary("DeleteSession", SessionServiceServer.DeleteSession),
		unary("StartSession", SessionServiceServer.StartSession),
		unary("PauseSession", SessionServiceServer.PauseSession),
		unary("ContinueSession", SessionServiceServer.ContinueSession),
		unary("StopSession", SessionServiceServer.StopSession),
		unary("EndTurn", SessionServiceServer.EndTurn),
		unary("PostponeTurn", SessionServiceServer.PostponeTurn),
		unary("GetTurn", SessionServiceServer.GetTurn),
		unary("AddEntity", SessionServiceServer.AddEntity),
		unary("RemoveEntity", SessionServiceServer.RemoveEntity),
		unary("GetEntity", SessionServiceServer.GetEntity),
		unary("UpdateEntity", SessionServiceServer.UpdateEntity),
		unary("Attack", SessionServiceServer.Attack),
		unary("SavingThrow", SessionServiceServer.SavingThrow),
		unary("AddEffect", SessionServiceServer.AddEffect),
		unary("SetReaction", SessionServiceServer.SetReaction),
		unary("RollDice", SessionServiceServer.RollDice),
		unary("GetHistory", SessionServiceServer.GetHistory),
		unary("AppendHistory", SessionServiceServer.AppendHistory),
		unary("ListMonsterTemplates", SessionServiceServer.ListMonsterTemplates),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpg/session/v1alpha1/session.json",
}

// unary adapts a typed server method to grpc's untyped method handler
func unary[Req, Resp any](
	method string,
	call func(SessionServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SessionServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(SessionServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// SessionServiceClient is the client API for the session service. Every
// call is sent with the JSON content subtype.
type SessionServiceClient interface {
	CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error)
	ListSessions(ctx context.Context, in *ListSessionsRequest, opts ...grpc.CallOption) (*ListSessionsResponse, error)
	DeleteSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*DeleteSessionResponse, error)
	StartSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	PauseSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	ContinueSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	StopSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	EndTurn(ctx context.Context, in *EndTurnRequest, opts ...grpc.CallOption) (*TurnResponse, error)
	PostponeTurn(ctx context.Context, in *PostponeTurnRequest, opts ...grpc.CallOption) (*TurnResponse, error)
	GetTurn(ctx context.Context, in *GetTurnRequest, opts ...grpc.CallOption) (*GetTurnResponse, error)
	AddEntity(ctx context.Context, in *AddEntityRequest, opts ...grpc.CallOption) (*EntityResponse, error)
	RemoveEntity(ctx context.Context, in *EntityRequest, opts ...grpc.CallOption) (*EntityResponse, error)
	GetEntity(ctx context.Context, in *EntityRequest, opts ...grpc.CallOption) (*EntityResponse, error)
	UpdateEntity(ctx context.Context, in *UpdateEntityRequest, opts ...grpc.CallOption) (*UpdateEntityResponse, error)
	Attack(ctx context.Context, in *AttackRequest, opts ...grpc.CallOption) (*AttackResponse, error)
	SavingThrow(ctx context.Context, in *SavingThrowRequest, opts ...grpc.CallOption) (*SavingThrowResponse, error)
	AddEffect(ctx context.Context, in *AddEffectRequest, opts ...grpc.CallOption) (*EntityResponse, error)
	SetReaction(ctx context.Context, in *SetReactionRequest, opts ...grpc.CallOption) (*EntityResponse, error)
	RollDice(ctx context.Context, in *RollDiceRequest, opts ...grpc.CallOption) (*RollDiceResponse, error)
	GetHistory(ctx context.Context, in *GetHistoryRequest, opts ...grpc.CallOption) (*GetHistoryResponse, error)
	AppendHistory(ctx context.Context, in *AppendHistoryRequest, opts ...grpc.CallOption) (*AppendHistoryResponse, error)
	ListMonsterTemplates(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListMonsterTemplatesResponse, error)
}

type sessionServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSessionServiceClient creates a client on cc
func NewSessionServiceClient(cc grpc.ClientConnInterface) SessionServiceClient {
	return &sessionServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *sessionServiceClient) CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "CreateSession", in, opts)
}

func (c *sessionServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*GetSessionResponse, error) {
	return invoke[GetSessionResponse](ctx, c.cc, "GetSession", in, opts)
}

func (c *sessionServiceClient) ListSessions(ctx context.Context, in *ListSessionsRequest, opts ...grpc.CallOption) (*ListSessionsResponse, error) {
	return invoke[ListSessionsResponse](ctx, c.cc, "ListSessions", in, opts)
}

func (c *sessionServiceClient) DeleteSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*DeleteSessionResponse, error) {
	return invoke[DeleteSessionResponse](ctx, c.cc, "DeleteSession", in, opts)
}

func (c *sessionServiceClient) StartSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "StartSession", in, opts)
}

func (c *sessionServiceClient) PauseSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "PauseSession", in, opts)
}

func (c *sessionServiceClient) ContinueSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "ContinueSession", in, opts)
}

func (c *sessionServiceClient) StopSession(ctx context.Context, in *SessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, "StopSession", in, opts)
}

func (c *sessionServiceClient) EndTurn(ctx context.Context, in *EndTurnRequest, opts ...grpc.CallOption) (*TurnResponse, error) {
	return invoke[TurnResponse](ctx, c.cc, "EndTurn", in, opts)
}

func (c *sessionServiceClient) PostponeTurn(ctx context.Context, in *PostponeTurnRequest, opts ...grpc.CallOption) (*TurnResponse, error) {
	return invoke[TurnResponse](ctx, c.cc, "PostponeTurn", in, opts)
}

func (c *sessionServiceClient) GetTurn(ctx context.Context, in *GetTurnRequest, opts ...grpc.CallOption) (*GetTurnResponse, error) {
	return invoke[GetTurnResponse](ctx, c.cc, "GetTurn", in, opts)
}

func (c *sessionServiceClient) AddEntity(ctx context.Context, in *AddEntityRequest, opts ...grpc.CallOption) (*EntityResponse, error) {
	return invoke[EntityResponse](ctx, c.cc, "AddEntity", in, opts)
}

func (c *sessionServiceClient) RemoveEntity(ctx context.Context, in *EntityRequest, opts ...grpc.CallOption) (*EntityResponse, error) {
	return invoke[EntityResponse](ctx, c.cc, "RemoveEntity", in, opts)
}

func (c *sessionServiceClient) GetEntity(ctx context.Context, in *EntityRequest, opts ...grpc.CallOption) (*EntityResponse, error) {
	return invoke[EntityResponse](ctx, c.cc, "GetEntity", in, opts)
}

func (c *sessionServiceClient) UpdateEntity(ctx context.Context, in *UpdateEntityRequest, opts ...grpc.CallOption) (*UpdateEntityResponse, error) {
	return invoke[UpdateEntityResponse](ctx, c.cc, "UpdateEntity", in, opts)
}

func (c *sessionServiceClient) Attack(ctx context.Context, in *AttackRequest, opts ...grpc.CallOption) (*AttackResponse, error) {
	return invoke[AttackResponse](ctx, c.cc, "Attack", in, opts)
}

func (c *sessionServiceClient) SavingThrow(ctx context.Context, in *SavingThrowRequest, opts ...grpc.CallOption) (*SavingThrowResponse, error) {
	return invoke[SavingThrowResponse](ctx, c.cc, "SavingThrow", in, opts)
}

func (c *sessionServiceClient) AddEffect(ctx context.Context, in *AddEffectRequest, opts ...grpc.CallOption) (*EntityResponse, error) {
	return invoke[EntityResponse](ctx, c.cc, "AddEffect", in, opts)
}

func (c *sessionServiceClient) SetReaction(ctx context.Context, in *SetReactionRequest, opts ...grpc.CallOption) (*EntityResponse, error) {
	return invoke[EntityResponse](ctx, c.cc, "SetReaction", in, opts)
}

func (c *sessionServiceClient) RollDice(ctx context.Context, in *RollDiceRequest, opts ...grpc.CallOption) (*RollDiceResponse, error) {
	return invoke[RollDiceResponse](ctx, c.cc, "RollDice", in, opts)
}

func (c *sessionServiceClient) GetHistory(ctx context.Context, in *GetHistoryRequest, opts ...grpc.CallOption) (*GetHistoryResponse, error) {
	return invoke[GetHistoryResponse](ctx, c.cc, "GetHistory", in, opts)
}

func (c *sessionServiceClient) AppendHistory(ctx context.Context, in *AppendHistoryRequest, opts ...grpc.CallOption) (*AppendHistoryResponse, error) {
	return invoke[AppendHistoryResponse](ctx, c.cc, "AppendHistory", in, opts)
}

func (c *sessionServiceClient) ListMonsterTemplates(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*ListMonsterTemplatesResponse, error) {
	return invoke[ListMonsterTemplatesResponse](ctx, c.cc, "ListMonsterTemplates", in, opts)
}
