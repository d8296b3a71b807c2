package k8s

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"
	"k8s.io/utils/ptr"

	"github.com/skillcoder/kbs-deployer/internal/logic/deployer"
)

const (
	fieldManager = "kbs-deployer"

	logTailLines = 200
)

type adapter struct {
	logger           *slog.Logger
	clientset        kubernetes.Interface
	metricsClientset metricsv.Interface
	dynamicClient    dynamic.Interface
	mapper           meta.RESTMapper
}

// New creates a new K8s adapter.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	metricsClientset metricsv.Interface,
	dynamicClient dynamic.Interface,
	mapper meta.RESTMapper,
) deployer.ClusterClient {
	return &adapter{
		logger:           logger.With("component", "k8s"),
		clientset:        clientset,
		metricsClientset: metricsClientset,
		dynamicClient:    dynamicClient,
		mapper:           mapper,
	}
}

var _ deployer.ClusterClient = (*adapter)(nil)

// ApplyCommand server-side applies the objects in order.
func (a *adapter) ApplyCommand(
	ctx context.Context,
	objects []*unstructured.Unstructured,
) error {
	for _, obj := range objects {
		ri, err := a.resourceFor(obj)
		if err != nil {
			return err
		}

		_, err = ri.Apply(ctx, obj.GetName(), obj, metav1.ApplyOptions{
			FieldManager: fieldManager,
			Force:        true,
		})
		if err != nil {
			return fmt.Errorf("apply %s %s: %w", obj.GetKind(), obj.GetName(), err)
		}

		a.logger.DebugContext(ctx, "object applied",
			"kind", obj.GetKind(),
			"name", obj.GetName(),
			"namespace", obj.GetNamespace(),
		)

		// new kinds are only discoverable after their CRD exists
		if obj.GetKind() == "CustomResourceDefinition" {
			meta.MaybeResetRESTMapper(a.mapper)
		}
	}

	return nil
}

// DeleteCommand deletes the objects in reverse order. Objects or kinds that
// are already gone are skipped.
func (a *adapter) DeleteCommand(
	ctx context.Context,
	objects []*unstructured.Unstructured,
) error {
	var errs error

	for _, obj := range slices.Backward(objects) {
		ri, err := a.resourceFor(obj)
		if err != nil {
			if meta.IsNoMatchError(err) {
				continue
			}

			errs = errors.Join(errs, err)

			continue
		}

		err = ri.Delete(ctx, obj.GetName(), metav1.DeleteOptions{
			PropagationPolicy: ptr.To(metav1.DeletePropagationBackground),
		})
		if err != nil {
			if apierrors.IsNotFound(err) {
				continue
			}

			errs = errors.Join(errs, fmt.Errorf("delete %s %s: %w", obj.GetKind(), obj.GetName(), err))

			continue
		}

		a.logger.DebugContext(ctx, "object deleted",
			"kind", obj.GetKind(),
			"name", obj.GetName(),
			"namespace", obj.GetNamespace(),
		)
	}

	return errs
}

func (a *adapter) resourceFor(obj *unstructured.Unstructured) (dynamic.ResourceInterface, error) {
	gvk := obj.GroupVersionKind()

	mapping, err := a.mapper.RESTMapping(gvk.GroupKind(), gvk.Version)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", gvk, err)
	}

	if mapping.Scope.Name() == meta.RESTScopeNameNamespace {
		return a.dynamicClient.Resource(mapping.Resource).Namespace(obj.GetNamespace()), nil
	}

	return a.dynamicClient.Resource(mapping.Resource), nil
}

func (a *adapter) PodRunningQuery(
	ctx context.Context,
	namespace,
	labelSelector string,
) (bool, error) {
	pods, err := a.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{
		LabelSelector: labelSelector,
	})
	if err != nil {
		return false, fmt.Errorf("list pods: %w", err)
	}

	for i := range pods.Items {
		if pods.Items[i].Status.Phase == corev1.PodRunning {
			return true, nil
		}
	}

	return false, nil
}

func (a *adapter) ServiceEndpointQuery(
	ctx context.Context,
	namespace,
	name string,
) (deployer.ServiceEndpoint, error) {
	svc, err := a.clientset.CoreV1().Services(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return deployer.ServiceEndpoint{}, &NotFoundError{Kind: "service", Name: name}
		}

		return deployer.ServiceEndpoint{}, fmt.Errorf("get service: %w", err)
	}

	return toServiceEndpoint(svc)
}

func (a *adapter) IngressHostQuery(
	ctx context.Context,
	namespace,
	name string,
) (string, error) {
	ing, err := a.clientset.NetworkingV1().Ingresses(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return "", &NotFoundError{Kind: "ingress", Name: name}
		}

		return "", fmt.Errorf("get ingress: %w", err)
	}

	if len(ing.Spec.Rules) == 0 {
		return "", nil
	}

	return ing.Spec.Rules[0].Host, nil
}

func (a *adapter) RunPodCommand(
	ctx context.Context,
	pod deployer.ProbePod,
) error {
	_, err := a.clientset.CoreV1().Pods(pod.Namespace).Create(ctx, toK8sPod(pod), metav1.CreateOptions{
		FieldManager: fieldManager,
	})
	if err != nil {
		return fmt.Errorf("create pod %s: %w", pod.Name, err)
	}

	return nil
}

func (a *adapter) PodLogsQuery(
	ctx context.Context,
	namespace,
	name string,
) (string, error) {
	data, err := a.clientset.CoreV1().Pods(namespace).GetLogs(name, &corev1.PodLogOptions{}).DoRaw(ctx)
	if err != nil {
		return "", fmt.Errorf("get logs of %s: %w", name, err)
	}

	return string(data), nil
}

func (a *adapter) DeletePodCommand(
	ctx context.Context,
	namespace,
	name string,
) error {
	err := a.clientset.CoreV1().Pods(namespace).Delete(ctx, name, metav1.DeleteOptions{
		GracePeriodSeconds: ptr.To[int64](0),
	})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return &NotFoundError{Kind: "pod", Name: name}
		}

		return fmt.Errorf("delete pod %s: %w", name, err)
	}

	return nil
}

// DescribeWorkloadQuery renders deployments and pods matching the selector
// together with pod events and, when available, pod metrics.
func (a *adapter) DescribeWorkloadQuery(
	ctx context.Context,
	namespace,
	labelSelector string,
) (string, error) {
	listOpts := metav1.ListOptions{LabelSelector: labelSelector}

	deployments, err := a.clientset.AppsV1().Deployments(namespace).List(ctx, listOpts)
	if err != nil {
		return "", fmt.Errorf("list deployments: %w", err)
	}

	pods, err := a.clientset.CoreV1().Pods(namespace).List(ctx, listOpts)
	if err != nil {
		return "", fmt.Errorf("list pods: %w", err)
	}

	var d description

	for i := range deployments.Items {
		d.deployment(&deployments.Items[i])
	}

	for i := range pods.Items {
		pod := &pods.Items[i]
		d.pod(pod)

		events, err := a.clientset.CoreV1().Events(namespace).List(ctx, metav1.ListOptions{
			FieldSelector: "involvedObject.kind=Pod,involvedObject.name=" + pod.Name,
		})
		if err != nil {
			a.logger.DebugContext(ctx, "list pod events", "pod", pod.Name, "reason", err)
		} else {
			d.events(events.Items)
		}

		podMetrics, err := a.metricsClientset.MetricsV1beta1().PodMetricses(namespace).Get(ctx, pod.Name, metav1.GetOptions{})
		if err != nil {
			a.logger.DebugContext(ctx, "get pod metrics", "pod", pod.Name, "reason", err)
		} else {
			d.metrics(podMetrics)
		}
	}

	if d.empty() {
		return fmt.Sprintf("no deployments or pods match %q in %s", labelSelector, namespace), nil
	}

	return d.String(), nil
}

// WorkloadLogsQuery returns the tail of the logs of every pod matching the
// selector.
func (a *adapter) WorkloadLogsQuery(
	ctx context.Context,
	namespace,
	labelSelector string,
) (string, error) {
	pods, err := a.clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{
		LabelSelector: labelSelector,
	})
	if err != nil {
		return "", fmt.Errorf("list pods: %w", err)
	}

	var d description

	for i := range pods.Items {
		name := pods.Items[i].Name

		data, err := a.clientset.CoreV1().Pods(namespace).GetLogs(name, &corev1.PodLogOptions{
			TailLines: ptr.To[int64](logTailLines),
		}).DoRaw(ctx)
		if err != nil {
			d.logs(name, "<"+err.Error()+">")

			continue
		}

		d.logs(name, string(data))
	}

	return d.String(), nil
}
