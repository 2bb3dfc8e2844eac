package proto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protobuf "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dtroode/bankcards-server/api/proto"
)

func TestFileDescriptor_Services(t *testing.T) {
	fd := proto.File_bankcards_proto
	require.NotNil(t, fd)
	assert.Equal(t, "bankcards", string(fd.Package()))

	tests := []struct {
		service string
		desc    string
		methods int
	}{
		{service: "Auth", desc: proto.Auth_ServiceDesc.ServiceName, methods: len(proto.Auth_ServiceDesc.Methods)},
		{service: "Cards", desc: proto.Cards_ServiceDesc.ServiceName, methods: len(proto.Cards_ServiceDesc.Methods)},
		{service: "Transfers", desc: proto.Transfers_ServiceDesc.ServiceName, methods: len(proto.Transfers_ServiceDesc.Methods)},
		{service: "Users", desc: proto.Users_ServiceDesc.ServiceName, methods: len(proto.Users_ServiceDesc.Methods)},
	}

	require.Equal(t, len(tests), fd.Services().Len())
	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			sd := fd.Services().ByName(protoreflect.Name(tt.service))
			require.NotNil(t, sd)
			assert.Equal(t, tt.desc, string(sd.FullName()))
			assert.Equal(t, tt.methods, sd.Methods().Len())
		})
	}
}

func TestUpdateUserRequest_UsernamePresence(t *testing.T) {
	t.Run("unset stays unset", func(t *testing.T) {
		b, err := protobuf.Marshal(&proto.UpdateUserRequest{UserId: "u1"})
		require.NoError(t, err)

		var got proto.UpdateUserRequest
		require.NoError(t, protobuf.Unmarshal(b, &got))
		assert.Equal(t, "u1", got.GetUserId())
		assert.Nil(t, got.Username)
	})

	t.Run("empty string is kept", func(t *testing.T) {
		empty := ""
		b, err := protobuf.Marshal(&proto.UpdateUserRequest{UserId: "u1", Username: &empty})
		require.NoError(t, err)

		var got proto.UpdateUserRequest
		require.NoError(t, protobuf.Unmarshal(b, &got))
		require.NotNil(t, got.Username)
		assert.Equal(t, "", got.GetUsername())
	})
}

func TestListUsersResponse_Wire(t *testing.T) {
	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	in := &proto.ListUsersResponse{Users: []*proto.User{{
		Id:        "u1",
		Username:  "user1",
		Roles:     []string{"ADMIN", "USER"},
		CreatedAt: timestamppb.New(created),
	}}}

	b, err := protobuf.Marshal(in)
	require.NoError(t, err)

	var got proto.ListUsersResponse
	require.NoError(t, protobuf.Unmarshal(b, &got))
	assert.True(t, protobuf.Equal(in, &got))
	assert.True(t, created.Equal(got.GetUsers()[0].GetCreatedAt().AsTime()))
}
